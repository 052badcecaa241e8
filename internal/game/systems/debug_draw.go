package systems

import (
	"github.com/Faultbox/wolfgrid/internal/engine/debug"
	"github.com/Faultbox/wolfgrid/pkg/math"
)

// gridHeight lifts the overlay just above the floor to avoid z-fighting.
const gridHeight = 0.01

// DebugAxes draws the world axes at the origin: X red, Y green, Z blue.
func DebugAxes(ctx *Context) error {
	if ctx.Gizmos == nil {
		return nil
	}
	var origin math.Vec3
	ctx.Gizmos.Ray(origin, math.UnitZ, debug.Blue)
	ctx.Gizmos.Ray(origin, math.UnitY, debug.Green)
	ctx.Gizmos.Ray(origin, math.UnitX, debug.Red)
	return nil
}

// DebugGrid outlines the active map's cells when the debug overlay is on.
func DebugGrid(ctx *Context) error {
	if !ctx.DebugOverlay || ctx.Gizmos == nil || ctx.World.Map == nil {
		return nil
	}
	ctx.Gizmos.Grid(ctx.World.Map.Width, ctx.World.Map.Height, gridHeight, debug.Gray)
	return nil
}
