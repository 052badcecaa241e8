// Package input turns raw device events into per-frame snapshots that game
// systems read. It has no dependency on the windowing backend.
package input

import (
	"fmt"

	"github.com/Faultbox/wolfgrid/pkg/math"
)

// Action is a bindable movement key.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionStrafeLeft
	ActionStrafeRight

	actionCount
)

// Actions lists every Action.
var Actions = [actionCount]Action{ActionForward, ActionBackward, ActionStrafeLeft, ActionStrafeRight}

// String returns the config name of the action.
func (a Action) String() string {
	switch a {
	case ActionForward:
		return "forward"
	case ActionBackward:
		return "backward"
	case ActionStrafeLeft:
		return "strafe_left"
	case ActionStrafeRight:
		return "strafe_right"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Snapshot is the input visible to one frame.
type Snapshot struct {
	// MouseDeltas holds one relative motion per mouse event, in arrival order.
	MouseDeltas []math.Vec2
	held        [actionCount]bool
}

// Held reports whether the action's key was down when the frame started.
func (s Snapshot) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a]
}

// WithHeld returns a copy of s with the given actions held.
func (s Snapshot) WithHeld(actions ...Action) Snapshot {
	for _, a := range actions {
		if a >= 0 && a < actionCount {
			s.held[a] = true
		}
	}
	return s
}

// State accumulates events between frames.
type State struct {
	motion []math.Vec2
	held   [actionCount]bool
}

// AddMotion records one relative mouse motion event.
func (s *State) AddMotion(dx, dy float32) {
	s.motion = append(s.motion, math.Vec2{X: dx, Y: dy})
}

// SetHeld records whether an action's key is down.
func (s *State) SetHeld(a Action, held bool) {
	if a >= 0 && a < actionCount {
		s.held[a] = held
	}
}

// Drain returns the accumulated input and clears the motion queue.
// Held keys persist until they are released.
func (s *State) Drain() Snapshot {
	snap := Snapshot{held: s.held}
	if len(s.motion) > 0 {
		snap.MouseDeltas = append([]math.Vec2(nil), s.motion...)
		s.motion = s.motion[:0]
	}
	return snap
}
