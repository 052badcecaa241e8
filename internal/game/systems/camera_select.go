package systems

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/internal/logger"
)

// SelectCamera resolves the active camera for this frame. The previous choice
// is kept while it is still a camera in the scene; otherwise the first camera
// in spawn order takes over. A scene without cameras is valid.
func SelectCamera(ctx *Context) error {
	if obj, ok := ctx.activeCamera(); ok && obj.Markers.Has(scene.MarkerCamera) {
		return nil
	}

	next := uuid.Nil
	if cams := ctx.Scene.Query(scene.MarkerCamera); len(cams) > 0 {
		next = cams[0].ID
		if len(cams) > 1 {
			logger.Debug("multiple cameras, using first", zap.Int("count", len(cams)))
		}
	}
	if next != ctx.World.ActiveCamera {
		logger.Debug("active camera changed", zap.Stringer("camera", next))
	}
	ctx.World.ActiveCamera = next
	return nil
}
