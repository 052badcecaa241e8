package systems

import (
	stdmath "math"

	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/pkg/math"
)

// spriteFacing turns the sprite quad's +X normal onto the look direction.
const spriteFacing = stdmath.Pi / 2

// Billboard turns every sprite about the vertical axis to face the active
// camera. A sprite directly below or above the camera keeps its last facing.
func Billboard(ctx *Context) error {
	cam, ok := ctx.activeCamera()
	if !ok {
		return nil
	}
	eye := cam.Transform.Translation

	for _, obj := range ctx.Scene.Query(scene.MarkerSprite) {
		t := &obj.Transform
		target := eye.WithZ(t.Translation.Z)
		if target.Distance(t.Translation) < 1e-5 {
			continue
		}
		t.LookAt(target, math.UnitZ)
		t.RotateZ(spriteFacing)
	}
	return nil
}
