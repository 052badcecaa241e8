package debug

import (
	"github.com/Faultbox/wolfgrid/pkg/math"
)

// Grid queues the cell boundaries of a width x height tile grid at the given height.
// Cell (x, y) spans [x-0.5, x+0.5] x [y-0.5, y+0.5], matching where blocks are placed.
func (g *Gizmos) Grid(width, height int, z float32, c Color) {
	if width <= 0 || height <= 0 {
		return
	}

	minX, maxX := float32(-0.5), float32(width)-0.5
	minY, maxY := float32(-0.5), float32(height)-0.5

	for x := 0; x <= width; x++ {
		wx := float32(x) - 0.5
		g.Line(math.Vec3{X: wx, Y: minY, Z: z}, math.Vec3{X: wx, Y: maxY, Z: z}, c)
	}
	for y := 0; y <= height; y++ {
		wy := float32(y) - 0.5
		g.Line(math.Vec3{X: minX, Y: wy, Z: z}, math.Vec3{X: maxX, Y: wy, Z: z}, c)
	}
}
