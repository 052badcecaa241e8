// Package sdlinput feeds SDL2 keyboard and mouse events into input.State.
package sdlinput

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/wolfgrid/internal/engine/input"
)

// ErrUnknownKey is returned for key names SDL does not recognize.
var ErrUnknownKey = errors.New("unknown key name")

// Bindings maps each movement action to an SDL scancode.
type Bindings map[input.Action]sdl.Scancode

// ParseBindings resolves SDL key names ("W", "Up", "Left Shift") to scancodes.
func ParseBindings(names map[input.Action]string) (Bindings, error) {
	b := make(Bindings, len(names))
	for action, name := range names {
		sc := sdl.GetScancodeFromName(name)
		if sc == sdl.SCANCODE_UNKNOWN {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownKey, name, action)
		}
		b[action] = sc
	}
	return b, nil
}

// Events reports window-level events seen during a poll.
type Events struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int
}

// Poller drains the SDL event queue once per frame.
type Poller struct {
	bindings Bindings
	state    input.State
}

// New creates a poller for the given bindings.
func New(b Bindings) *Poller {
	return &Poller{bindings: b}
}

// Poll processes pending SDL events and samples the held movement keys.
// Escape and window close both request quit.
func (p *Poller) Poll() Events {
	var ev Events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			ev.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				ev.Resized = true
				ev.Width = int(e.Data1)
				ev.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				ev.Quit = true
			}

		case *sdl.MouseMotionEvent:
			p.state.AddMotion(float32(e.XRel), float32(e.YRel))
		}
	}

	keys := sdl.GetKeyboardState()
	for action, sc := range p.bindings {
		p.state.SetHeld(action, int(sc) < len(keys) && keys[sc] != 0)
	}

	return ev
}

// Snapshot returns this frame's input and clears the mouse motion queue.
func (p *Poller) Snapshot() input.Snapshot {
	return p.state.Drain()
}
