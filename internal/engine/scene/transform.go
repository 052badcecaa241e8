package scene

import (
	"github.com/Faultbox/wolfgrid/pkg/math"
)

// Transform is the pose of a scene object. Local axes follow the GL convention
// (-Z forward, +Y up, +X right); the world is Z-up.
type Transform struct {
	Translation math.Vec3
	Rotation    math.Quat
	Scale       math.Vec3
}

// FromTranslation returns an unrotated, unscaled transform at v.
func FromTranslation(v math.Vec3) Transform {
	return Transform{
		Translation: v,
		Rotation:    math.QuatIdentity(),
		Scale:       math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// FromXYZ returns an unrotated, unscaled transform at (x, y, z).
func FromXYZ(x, y, z float32) Transform {
	return FromTranslation(math.Vec3{X: x, Y: y, Z: z})
}

// LookingTo returns a copy of t rotated so that Forward points along dir.
func (t Transform) LookingTo(dir, up math.Vec3) Transform {
	t.LookTo(dir, up)
	return t
}

// LookTo rotates t so that Forward points along dir and Up lies in the plane
// of dir and up. A zero dir, or one parallel to up, leaves t unchanged.
func (t *Transform) LookTo(dir, up math.Vec3) {
	back := dir.Neg().Normalize()
	if back == (math.Vec3{}) {
		return
	}
	right := up.Normalize().Cross(back)
	if right.Length() < 1e-6 {
		return
	}
	right = right.Normalize()
	t.Rotation = math.QuatFromBasis(right, back.Cross(right), back)
}

// LookAt rotates t so that Forward points at target.
func (t *Transform) LookAt(target, up math.Vec3) {
	t.LookTo(target.Sub(t.Translation), up)
}

// RotateZ rotates t by angle radians about the world Z axis.
func (t *Transform) RotateZ(angle float32) {
	t.Rotate(math.QuatFromRotationZ(angle))
}

// RotateAxis rotates t by angle radians about a normalized world axis.
func (t *Transform) RotateAxis(axis math.Vec3, angle float32) {
	t.Rotate(math.QuatFromAxisAngle(axis, angle))
}

// Rotate applies q in world space on top of the current rotation.
func (t *Transform) Rotate(q math.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// Forward returns the world direction of local -Z.
func (t Transform) Forward() math.Vec3 {
	return t.Rotation.Rotate(math.Vec3{Z: -1})
}

// Right returns the world direction of local +X.
func (t Transform) Right() math.Vec3 {
	return t.Rotation.Rotate(math.UnitX)
}

// Up returns the world direction of local +Y.
func (t Transform) Up() math.Vec3 {
	return t.Rotation.Rotate(math.UnitY)
}

// Matrix returns the model matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.Compose(t.Translation, t.Rotation, t.Scale)
}
