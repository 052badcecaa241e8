package systems

import (
	"fmt"

	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/pkg/math"
	"github.com/Faultbox/wolfgrid/pkg/tilemap"
)

// Placement constants for instantiated geometry.
const (
	CameraHeight  = 0.5 // Eye height above the tile position
	CeilingSize   = 64
	CeilingHeight = 1
)

var (
	floorColor   = gray(120)
	ceilingColor = gray(56)
	white        = [4]float32{1, 1, 1, 1}
)

func gray(v uint8) [4]float32 {
	c := float32(v) / 255
	return [4]float32{c, c, c, 1}
}

// spawnTile creates the scene object for one kind of a tile.
func spawnTile(s *scene.Scene, tile *tilemap.TileDef, kind tilemap.Kind) *scene.Object {
	switch kind {
	case tilemap.KindCamera:
		pos := tile.Position.Add(math.Vec3{Z: CameraHeight})
		return s.Spawn(scene.Object{
			Name:      fmt.Sprintf("camera(%d,%d)", tile.Index.X, tile.Index.Y),
			Transform: scene.FromTranslation(pos).LookingTo(math.UnitX, math.UnitZ),
			Markers:   scene.MarkerWorld | scene.MarkerCamera,
		})

	case tilemap.KindBlock:
		pos := math.Vec3{X: float32(tile.Index.X), Y: float32(tile.Index.Y)}
		return s.Spawn(scene.Object{
			Name:      fmt.Sprintf("block(%d,%d)", tile.Index.X, tile.Index.Y),
			Transform: scene.FromTranslation(pos).LookingTo(math.UnitY, math.UnitZ),
			Markers:   scene.MarkerWorld | scene.MarkerSolid,
			Mesh:      &scene.Mesh{Kind: scene.MeshBlock},
			Material:  &scene.Material{Texture: tile.Image, BaseColor: white, Unlit: true},
		})

	case tilemap.KindSprite:
		return s.Spawn(scene.Object{
			Name:      fmt.Sprintf("sprite(%d,%d)", tile.Index.X, tile.Index.Y),
			Transform: scene.FromTranslation(tile.Position).LookingTo(math.UnitY, math.UnitZ),
			Markers:   scene.MarkerWorld | scene.MarkerSprite,
			Mesh:      &scene.Mesh{Kind: scene.MeshSprite},
			Material:  &scene.Material{Texture: tile.Image, BaseColor: white, AlphaBlend: true, Unlit: true},
		})

	default:
		panic(fmt.Sprintf("systems: unhandled tile kind %v", kind))
	}
}

// spawnStatic creates the floor and ceiling planes for m.
func spawnStatic(s *scene.Scene, m *tilemap.Map) (floor, ceiling *scene.Object) {
	center := m.Center()

	floor = s.Spawn(scene.Object{
		Name:      "floor",
		Transform: scene.FromTranslation(center).LookingTo(math.UnitY, math.UnitZ),
		Markers:   scene.MarkerWorld | scene.MarkerStatic,
		Mesh:      &scene.Mesh{Kind: scene.MeshPlane, Size: float32(m.Size())},
		Material:  &scene.Material{BaseColor: floorColor, Unlit: true},
	})

	ceiling = s.Spawn(scene.Object{
		Name:      "ceiling",
		Transform: scene.FromTranslation(center.WithZ(CeilingHeight)).LookingTo(math.UnitY, math.UnitZ.Neg()),
		Markers:   scene.MarkerWorld | scene.MarkerStatic,
		Mesh:      &scene.Mesh{Kind: scene.MeshPlane, Size: CeilingSize},
		Material:  &scene.Material{BaseColor: ceilingColor, Unlit: true},
	})
	return floor, ceiling
}
