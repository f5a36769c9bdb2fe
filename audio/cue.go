// Package audio plays short sine blips when the circle wraps or turns.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate used for every tone.
const SampleRate = beep.SampleRate(44100)

// Tone describes one blip.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Config configures a Cue. Zero fields take defaults.
type Config struct {
	// Wrap plays when the circle wraps around. Default 880Hz for 50ms.
	Wrap Tone
	// Turn plays when the travel direction changes. Default 440Hz for 30ms.
	Turn Tone
	// Volume is a base-2 gain applied to both tones. 0 is unity, -1 halves
	// the amplitude. Default -1.
	Volume float64
}

// DefaultConfig returns the standard cue tones.
func DefaultConfig() Config {
	return Config{
		Wrap:   Tone{Freq: 880, Duration: 50 * time.Millisecond},
		Turn:   Tone{Freq: 440, Duration: 30 * time.Millisecond},
		Volume: -1,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Wrap == (Tone{}) {
		c.Wrap = d.Wrap
	}
	if c.Turn == (Tone{}) {
		c.Turn = d.Turn
	}
	if c.Volume == 0 {
		c.Volume = d.Volume
	}
	return c
}

// PlayFunc hands finished streamers to an output. speaker.Play satisfies it.
type PlayFunc func(s ...beep.Streamer)

// Cue implements sandbox.Cue. Each call builds a fresh bounded streamer and
// hands it to the output, so playback never blocks the caller.
type Cue struct {
	cfg  Config
	play PlayFunc
}

// New creates a Cue that sends its tones to play. The tones are validated
// up front so PlayWrap and PlayTurn cannot fail later.
func New(play PlayFunc, cfg Config) (*Cue, error) {
	cfg = cfg.withDefaults()
	for _, t := range []Tone{cfg.Wrap, cfg.Turn} {
		if t.Duration <= 0 {
			return nil, fmt.Errorf("tone %vHz: duration must be positive", t.Freq)
		}
		if _, err := generators.SineTone(SampleRate, t.Freq); err != nil {
			return nil, fmt.Errorf("tone %vHz: %w", t.Freq, err)
		}
	}
	return &Cue{cfg: cfg, play: play}, nil
}

// OpenSpeaker initializes the system speaker and returns a Cue playing on it
// along with a function that closes the speaker.
func OpenSpeaker(cfg Config) (*Cue, func(), error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, nil, fmt.Errorf("init speaker: %w", err)
	}
	c, err := New(speaker.Play, cfg)
	if err != nil {
		speaker.Close()
		return nil, nil, err
	}
	return c, speaker.Close, nil
}

// PlayWrap plays the wraparound tone.
func (c *Cue) PlayWrap() { c.play(c.Streamer(c.cfg.Wrap)) }

// PlayTurn plays the direction-change tone.
func (c *Cue) PlayTurn() { c.play(c.Streamer(c.cfg.Turn)) }

// Streamer returns a bounded sine streamer for t at the cue volume. It
// returns silence when t cannot be generated.
func (c *Cue) Streamer(t Tone) beep.Streamer {
	sine, err := generators.SineTone(SampleRate, t.Freq)
	if err != nil {
		return beep.Silence(SampleRate.N(t.Duration))
	}
	return &effects.Volume{
		Streamer: beep.Take(SampleRate.N(t.Duration), sine),
		Base:     2,
		Volume:   c.cfg.Volume,
	}
}
