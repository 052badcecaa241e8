package systems

import (
	"github.com/Faultbox/wolfgrid/internal/engine/input"
	"github.com/Faultbox/wolfgrid/pkg/math"
)

// MoveSpeed is the camera walking speed in units per second.
const MoveSpeed = 10

// minLateral is the smallest |forward × up| an accepted pitch may leave.
// Below it the forward vector is too close to vertical.
const minLateral = 0.1

// Camera applies mouse look and keyboard movement to the active camera.
func Camera(ctx *Context) error {
	cam, ok := ctx.activeCamera()
	if !ok {
		return nil
	}
	t := &cam.Transform
	up := math.UnitZ

	for _, d := range ctx.Input.MouseDeltas {
		t.RotateZ(-d.X * ctx.TurnSpeed)

		side := t.Forward().Cross(up).Normalize()
		candidate := *t
		candidate.RotateAxis(side, -d.Y*ctx.TurnSpeed)
		if candidate.Forward().Cross(up).Length() > minLateral {
			*t = candidate
		}
	}

	move := moveInput(ctx.Input).Normalize()
	if move == (math.Vec2{}) {
		return nil
	}
	forward := t.Forward().Ground().Normalize()
	lateral := forward.Cross(up).Normalize()
	step := ctx.DT * MoveSpeed
	t.Translation = t.Translation.
		Add(forward.Scale(move.Y * step)).
		Add(lateral.Scale(move.X * step))
	return nil
}

// moveInput maps held keys to an unnormalized direction: +Y forward, +X right.
func moveInput(in input.Snapshot) math.Vec2 {
	var v math.Vec2
	if in.Held(input.ActionForward) {
		v.Y += 1
	}
	if in.Held(input.ActionBackward) {
		v.Y -= 1
	}
	if in.Held(input.ActionStrafeLeft) {
		v.X -= 1
	}
	if in.Held(input.ActionStrafeRight) {
		v.X += 1
	}
	return v
}
