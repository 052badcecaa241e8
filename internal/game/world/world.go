// Package world holds the game-wide state that outlives individual frames:
// the active map, the map waiting to be instantiated, and frame bookkeeping.
package world

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/wolfgrid/internal/assets"
	"github.com/Faultbox/wolfgrid/internal/logger"
	"github.com/Faultbox/wolfgrid/pkg/tilemap"
)

// State is owned by the frame loop and passed to every system. It is not safe
// for concurrent use.
type State struct {
	// Map is the active map, or nil before the first load.
	Map *tilemap.Map

	// MapHandle is the map waiting to be instantiated. Cleared once consumed.
	MapHandle *assets.Handle

	// Updates counts HUD frames.
	Updates uint64

	// Loads counts instantiated maps; it changes exactly when the scene is rebuilt.
	Loads uint64

	// ActiveCamera is the scene object that receives look and move input.
	// uuid.Nil when the scene has no camera.
	ActiveCamera uuid.UUID
}

// New creates an empty world.
func New() *State {
	return &State{}
}

// RequestMap marks a map for instantiation on the next frame it is available.
// A request replaces any earlier one still pending.
func (s *State) RequestMap(h assets.Handle) {
	if s.MapHandle != nil && *s.MapHandle != h {
		logger.Info("replacing pending map", zap.Stringer("old", *s.MapHandle), zap.Stringer("new", h))
	}
	s.MapHandle = &h
}

// Pending returns the map waiting to be instantiated.
func (s *State) Pending() (assets.Handle, bool) {
	if s.MapHandle == nil {
		return assets.Handle{}, false
	}
	return *s.MapHandle, true
}

// Activate makes a copy of m the active map and consumes the pending request.
// The active camera is reset; the scene it pointed into is about to be rebuilt.
func (s *State) Activate(m *tilemap.Map) {
	s.Map = m.Clone()
	s.MapHandle = nil
	s.ActiveCamera = uuid.Nil
	s.Loads++
}
