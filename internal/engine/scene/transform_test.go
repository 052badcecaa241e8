package scene

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/wolfgrid/pkg/math"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got math.Vec3, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msg+" (x)")
	assert.InDelta(t, want.Y, got.Y, eps, msg+" (y)")
	assert.InDelta(t, want.Z, got.Z, eps, msg+" (z)")
}

func TestFromXYZ(t *testing.T) {
	tr := FromXYZ(1, 2, 3)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, tr.Translation)
	assert.Equal(t, math.QuatIdentity(), tr.Rotation)
	assert.Equal(t, math.Vec3{X: 1, Y: 1, Z: 1}, tr.Scale)
	assertVec(t, math.Vec3{Z: -1}, tr.Forward(), "identity forward")
}

func TestLookTo(t *testing.T) {
	tests := []struct {
		name      string
		dir, up   math.Vec3
		wantRight math.Vec3
		wantUp    math.Vec3
	}{
		{"east, z up", math.UnitX, math.UnitZ, math.Vec3{Y: -1}, math.UnitZ},
		{"north, z up", math.UnitY, math.UnitZ, math.UnitX, math.UnitZ},
		{"north, z down", math.UnitY, math.UnitZ.Neg(), math.Vec3{X: -1}, math.UnitZ.Neg()},
		{"unnormalized", math.Vec3{X: 5}, math.Vec3{Z: 3}, math.Vec3{Y: -1}, math.UnitZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := FromXYZ(0, 0, 0).LookingTo(tt.dir, tt.up)
			assertVec(t, tt.dir.Normalize(), tr.Forward(), "forward")
			assertVec(t, tt.wantRight, tr.Right(), "right")
			assertVec(t, tt.wantUp, tr.Up(), "up")
		})
	}
}

func TestLookToDegenerateKeepsRotation(t *testing.T) {
	tr := FromXYZ(0, 0, 0).LookingTo(math.UnitX, math.UnitZ)
	before := tr.Rotation

	tr.LookTo(math.Vec3{}, math.UnitZ)
	assert.Equal(t, before, tr.Rotation, "zero direction")

	tr.LookTo(math.UnitZ, math.UnitZ)
	assert.Equal(t, before, tr.Rotation, "direction parallel to up")
}

func TestLookAt(t *testing.T) {
	tr := FromXYZ(2, 2, 0.5)
	tr.LookAt(math.Vec3{X: 2, Y: 5, Z: 0.5}, math.UnitZ)
	assertVec(t, math.UnitY, tr.Forward(), "forward")
}

func TestRotateZIsWorldSpace(t *testing.T) {
	// Pitched down 45 degrees while facing east; a world-Z turn keeps the pitch.
	tr := FromXYZ(0, 0, 0).LookingTo(math.Vec3{X: 1, Z: -1}, math.UnitZ)
	tr.RotateZ(float32(gomath.Pi / 2))

	s := float32(gomath.Sqrt2 / 2)
	assertVec(t, math.Vec3{Y: s, Z: -s}, tr.Forward(), "forward after yaw")
}

func TestRotateAxis(t *testing.T) {
	tr := FromXYZ(0, 0, 0).LookingTo(math.UnitX, math.UnitZ)
	// Rotating about the right axis (-Y) by +90 degrees pitches up.
	tr.RotateAxis(math.Vec3{Y: -1}, float32(gomath.Pi/2))
	assertVec(t, math.UnitZ, tr.Forward(), "forward after pitch")
}

func TestMatrix(t *testing.T) {
	tr := FromXYZ(3, 4, 0).LookingTo(math.UnitY, math.UnitZ)
	tr.Scale = math.Vec3{X: 2, Y: 2, Z: 2}

	// Local -Z (forward) at distance 1 becomes 2 units north of the origin.
	got := tr.Matrix().TransformVec3(math.Vec3{Z: -1})
	assertVec(t, math.Vec3{X: 3, Y: 6}, got, "model matrix")
}
