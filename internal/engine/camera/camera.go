// Package camera turns a scene camera's pose into view and projection matrices.
package camera

import (
	gomath "math"

	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/pkg/math"
)

// Default clip planes, in world units. Maps are a few dozen units across.
const (
	DefaultNear = 0.05
	DefaultFar  = 200.0
)

// Lens holds the projection parameters of a perspective camera.
type Lens struct {
	FOV  float32 // Vertical field of view, degrees
	Near float32
	Far  float32
}

// NewLens creates a lens with the default clip planes.
func NewLens(fovDegrees float32) Lens {
	return Lens{
		FOV:  fovDegrees,
		Near: DefaultNear,
		Far:  DefaultFar,
	}
}

// Projection returns the projection matrix for a viewport of the given size.
// A degenerate viewport (minimized window) is treated as square.
func (l Lens) Projection(width, height int) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	fovY := l.FOV * float32(gomath.Pi) / 180
	return math.Perspective(fovY, aspect, l.Near, l.Far)
}

// View returns the view matrix for a camera at pose t. The camera's own up
// vector is used so that looking steeply up or down stays well defined.
func View(t scene.Transform) math.Mat4 {
	eye := t.Translation
	return math.LookAt(eye, eye.Add(t.Forward()), t.Up())
}

// ViewProjection returns projection * view.
func (l Lens) ViewProjection(t scene.Transform, width, height int) math.Mat4 {
	return l.Projection(width, height).Mul(View(t))
}
