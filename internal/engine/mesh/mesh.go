// Package mesh builds the vertex data for the scene's mesh kinds.
//
// Vertices are interleaved as [x, y, z, u, v] in the object's local space,
// where +Y is up. Faces wind counter-clockwise seen from outside.
package mesh

import (
	"fmt"

	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/pkg/math"
)

// Stride is the number of floats per vertex.
const Stride = 5

// Vertices returns the triangle list for kind.
func Vertices(kind scene.MeshKind) []float32 {
	switch kind {
	case scene.MeshPlane:
		return Plane()
	case scene.MeshBlock:
		return Block()
	case scene.MeshSprite:
		return Sprite()
	default:
		panic(fmt.Sprintf("mesh: unknown kind %d", kind))
	}
}

// Plane is a unit square in the XZ plane centered on the origin, facing +Y.
// Scale it by the mesh size.
func Plane() []float32 {
	return quad(nil, math.Vec3{X: -0.5, Z: 0.5}, math.UnitX, math.Vec3{Z: -1})
}

// Block is the four walls of a unit cube standing on the XZ plane, centered
// on the Y axis and one unit tall. It has no top or bottom.
func Block() []float32 {
	v := make([]float32, 0, 4*6*Stride)
	v = quad(v, math.Vec3{X: 0.5, Z: 0.5}, math.Vec3{Z: -1}, math.UnitY)   // +X
	v = quad(v, math.Vec3{X: -0.5, Z: -0.5}, math.UnitZ, math.UnitY)       // -X
	v = quad(v, math.Vec3{X: -0.5, Z: 0.5}, math.UnitX, math.UnitY)        // +Z
	v = quad(v, math.Vec3{X: 0.5, Z: -0.5}, math.UnitX.Neg(), math.UnitY) // -Z
	return v
}

// Sprite is a unit quad in the YZ plane facing +X, standing on the origin.
func Sprite() []float32 {
	return quad(nil, math.Vec3{Z: 0.5}, math.Vec3{Z: -1}, math.UnitY)
}

// quad appends two triangles spanning origin, origin+right and origin+up.
// The texture's top-left corner maps to origin+up.
func quad(dst []float32, origin, right, up math.Vec3) []float32 {
	p0 := origin
	p1 := origin.Add(right)
	p2 := p1.Add(up)
	p3 := origin.Add(up)

	uv0 := math.Vec2{X: 0, Y: 1}
	uv1 := math.Vec2{X: 1, Y: 1}
	uv2 := math.Vec2{X: 1, Y: 0}
	uv3 := math.Vec2{X: 0, Y: 0}

	for _, c := range []struct {
		p  math.Vec3
		uv math.Vec2
	}{{p0, uv0}, {p1, uv1}, {p2, uv2}, {p0, uv0}, {p2, uv2}, {p3, uv3}} {
		dst = append(dst, c.p.X, c.p.Y, c.p.Z, c.uv.X, c.uv.Y)
	}
	return dst
}
