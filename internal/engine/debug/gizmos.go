// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/wolfgrid/pkg/math"
)

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Axis colors.
var (
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
	Gray  = Color{0.5, 0.5, 0.5, 1}
)

// Line is one debug segment in world space.
type Line struct {
	From, To math.Vec3
	Color    Color
}

// Gizmos collects immediate-mode debug lines for one frame.
// The renderer draws and clears them at the end of the frame.
type Gizmos struct {
	lines []Line
}

// Line queues a segment from a to b.
func (g *Gizmos) Line(a, b math.Vec3, c Color) {
	g.lines = append(g.lines, Line{From: a, To: b, Color: c})
}

// Ray queues a segment from origin along dir.
func (g *Gizmos) Ray(origin, dir math.Vec3, c Color) {
	g.Line(origin, origin.Add(dir), c)
}

// Lines returns the queued segments.
func (g *Gizmos) Lines() []Line {
	return g.lines
}

// Clear drops all queued segments.
func (g *Gizmos) Clear() {
	g.lines = g.lines[:0]
}

// VertexStride is the number of floats per vertex in Vertices: [x, y, z, r, g, b, a].
const VertexStride = 7

// Vertices flattens the queued segments into GL_LINES vertex data.
func (g *Gizmos) Vertices() []float32 {
	out := make([]float32, 0, len(g.lines)*2*VertexStride)
	for _, l := range g.lines {
		for _, p := range [2]math.Vec3{l.From, l.To} {
			out = append(out, p.X, p.Y, p.Z, l.Color[0], l.Color[1], l.Color[2], l.Color[3])
		}
	}
	return out
}
