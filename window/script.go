package window

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phanxgames/sandbox"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`

	key sandbox.Key
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// scriptTarget is what a Script drives. The window game implements it.
type scriptTarget interface {
	InjectKey(k sandbox.Key)
	Screenshot(label string)
	pending() int
}

// Script sequences injected key presses, waits and screenshots across ticks
// for unattended runs. Supported actions:
//
//	{"action": "key", "key": "left"}
//	{"action": "wait", "frames": 30}
//	{"action": "screenshot", "label": "after-turn"}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range f.Steps {
		st := &f.Steps[i]
		switch st.Action {
		case "key":
			k, err := sandbox.ParseKey(st.Key)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.key = k
		case "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScriptFile reads and parses the script at path.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has run, all injected keys were delivered
// and all screenshots were written.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one tick.
func (s *Script) step(t scriptTarget) {
	if s.done {
		return
	}
	// Let injected keys drain and screenshots get written before advancing.
	if t.pending() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "key":
		t.InjectKey(st.key)
	case "screenshot":
		t.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && t.pending() == 0 {
		s.done = true
	}
}
