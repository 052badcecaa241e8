// Package systems contains the per-frame game logic. Each system is a plain
// function over a Context, so the whole frame can run without a window.
package systems

import (
	"github.com/Faultbox/wolfgrid/internal/assets"
	"github.com/Faultbox/wolfgrid/internal/engine/debug"
	"github.com/Faultbox/wolfgrid/internal/engine/input"
	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/internal/game/world"
	"github.com/Faultbox/wolfgrid/pkg/tilemap"
)

// MapSource resolves map handles without blocking. *assets.Server implements it.
type MapSource interface {
	Map(h assets.Handle) (*tilemap.Map, bool)
	// Release drops the decoded map once the world holds its own copy.
	Release(h assets.Handle)
}

// TextSink displays a short status string, such as the frame rate.
type TextSink interface {
	SetStatus(text string)
}

// Context is everything a system may read or write during one frame.
type Context struct {
	World  *world.State
	Scene  *scene.Scene
	Assets MapSource
	Input  input.Snapshot

	// DT is the frame delta in seconds.
	DT float32

	Gizmos *debug.Gizmos
	HUD    TextSink

	// TurnSpeed converts mouse motion to radians.
	TurnSpeed float32

	// DebugOverlay enables the map grid overlay.
	DebugOverlay bool
}

// activeCamera returns the camera selected for this frame.
func (c *Context) activeCamera() (*scene.Object, bool) {
	return c.Scene.Get(c.World.ActiveCamera)
}
