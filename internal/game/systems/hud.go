package systems

import "fmt"

// HUDRefreshInterval is the number of frames between frame-rate updates.
const HUDRefreshInterval = 100

// HUD counts frames and periodically shows the instantaneous frame rate.
func HUD(ctx *Context) error {
	ctx.World.Updates++
	if ctx.World.Updates%HUDRefreshInterval != 0 {
		return nil
	}
	if ctx.HUD == nil || ctx.DT <= 0 {
		return nil
	}
	ctx.HUD.SetStatus(fmt.Sprintf("%.0f", 1/ctx.DT))
	return nil
}
