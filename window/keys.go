package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sandbox"
)

// keyFromEbiten maps an Ebitengine key to the sandbox key set. Keys outside
// it map to KeyUnknown and are still delivered, so handlers see every press.
func keyFromEbiten(k ebiten.Key) sandbox.Key {
	switch k {
	case ebiten.KeyEscape:
		return sandbox.KeyEscape
	case ebiten.KeyArrowLeft:
		return sandbox.KeyLeft
	case ebiten.KeyArrowRight:
		return sandbox.KeyRight
	}
	return sandbox.KeyUnknown
}

// InjectKey queues a synthetic key press. Queued presses are delivered one
// per tick, and a tick that delivers an injected press skips real keyboard
// input.
func (g *game) InjectKey(k sandbox.Key) {
	g.injectQueue = append(g.injectQueue, k)
}

// pollKeys returns the presses to deliver this tick.
func (g *game) pollKeys() []sandbox.Key {
	if len(g.injectQueue) > 0 {
		k := g.injectQueue[0]
		copy(g.injectQueue, g.injectQueue[1:])
		g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
		return []sandbox.Key{k}
	}

	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	if len(g.keyBuf) == 0 {
		return nil
	}
	keys := make([]sandbox.Key, len(g.keyBuf))
	for i, k := range g.keyBuf {
		keys[i] = keyFromEbiten(k)
	}
	return keys
}
