package systems

import (
	"go.uber.org/zap"

	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/internal/logger"
	"github.com/Faultbox/wolfgrid/pkg/tilemap"
)

// LoadMap instantiates the pending map once its asset has resolved.
// Until then it does nothing; it is safe to call every frame.
func LoadMap(ctx *Context) error {
	h, ok := ctx.World.Pending()
	if !ok {
		return nil
	}
	m, ok := ctx.Assets.Map(h)
	if !ok {
		return nil
	}

	removed := 0
	for _, obj := range ctx.Scene.Query(scene.MarkerWorld) {
		removed += ctx.Scene.DespawnRecursive(obj.ID)
	}

	ctx.World.Activate(m)
	ctx.Assets.Release(h)
	active := ctx.World.Map

	var spawned int
	active.Each(func(_ int, tile *tilemap.TileDef) {
		for _, kind := range tile.Kinds() {
			spawnTile(ctx.Scene, tile, kind)
			spawned++
		}
	})
	spawnStatic(ctx.Scene, active)

	logger.Info("map loaded",
		zap.String("map", active.Name),
		zap.Stringer("handle", h),
		zap.Int("width", active.Width),
		zap.Int("height", active.Height),
		zap.Int("layers", len(active.Layers)))
	logger.Debug("scene rebuilt",
		zap.Int("removed", removed),
		zap.Int("spawned", spawned),
		zap.Int("cameras", len(ctx.Scene.Query(scene.MarkerCamera))))
	return nil
}
