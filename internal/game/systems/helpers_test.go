package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/wolfgrid/internal/assets"
	"github.com/Faultbox/wolfgrid/internal/engine/debug"
	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/internal/game/world"
	"github.com/Faultbox/wolfgrid/pkg/math"
	"github.com/Faultbox/wolfgrid/pkg/tilemap"
)

const testTurnSpeed = 0.003

// fakeMaps resolves only the handles it has been given.
type fakeMaps map[assets.Handle]*tilemap.Map

func (f fakeMaps) Map(h assets.Handle) (*tilemap.Map, bool) {
	m, ok := f[h]
	return m, ok
}

func (f fakeMaps) Release(h assets.Handle) {
	delete(f, h)
}

type statusRecorder struct {
	texts []string
}

func (r *statusRecorder) SetStatus(text string) {
	r.texts = append(r.texts, text)
}

func newContext() *Context {
	return &Context{
		World:     world.New(),
		Scene:     scene.New(),
		Assets:    fakeMaps{},
		DT:        1.0 / 60,
		Gizmos:    &debug.Gizmos{},
		TurnSpeed: testTurnSpeed,
	}
}

func mapHandle(p string) assets.Handle {
	return assets.Handle{Kind: assets.KindMap, Path: p}
}

func tile(x, y int, image string, classes ...string) *tilemap.TileDef {
	return &tilemap.TileDef{
		Position: math.Vec3{X: float32(x), Y: float32(y)},
		Index:    tilemap.Index{X: x, Y: y},
		Classes:  classes,
		Image:    image,
	}
}

// scenarioMap is a 2x1 map: a camera at (0,0) and a wall at (1,0).
func scenarioMap() *tilemap.Map {
	m := tilemap.NewMap("scenario", 2, 1, 1)
	m.Layers[0].Set(0, 0, tile(0, 0, "", "camera"))
	m.Layers[0].Set(1, 0, tile(1, 0, "wall.png", "block"))
	return m
}

// loadInto makes m resolvable under path, requests it and runs LoadMap.
func loadInto(t *testing.T, ctx *Context, path string, m *tilemap.Map) {
	t.Helper()
	h := mapHandle(path)
	ctx.Assets.(fakeMaps)[h] = m
	ctx.World.RequestMap(h)
	require.NoError(t, LoadMap(ctx))
}

// spawnCamera adds a camera at pos facing +X and makes it active.
func spawnCamera(ctx *Context, pos math.Vec3) *scene.Object {
	cam := ctx.Scene.Spawn(scene.Object{
		Name:      "camera",
		Transform: scene.FromTranslation(pos).LookingTo(math.UnitX, math.UnitZ),
		Markers:   scene.MarkerCamera,
	})
	ctx.World.ActiveCamera = cam.ID
	return cam
}

func lateral(t scene.Transform) float32 {
	return t.Forward().Cross(math.UnitZ).Length()
}
