// Package game implements the main game loop.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wolfgrid/internal/assets"
	"github.com/Faultbox/wolfgrid/internal/config"
	"github.com/Faultbox/wolfgrid/internal/engine/debug"
	"github.com/Faultbox/wolfgrid/internal/engine/input/sdlinput"
	"github.com/Faultbox/wolfgrid/internal/engine/renderer"
	"github.com/Faultbox/wolfgrid/internal/engine/scene"
	"github.com/Faultbox/wolfgrid/internal/engine/window"
	"github.com/Faultbox/wolfgrid/internal/game/systems"
	"github.com/Faultbox/wolfgrid/internal/game/world"
	"github.com/Faultbox/wolfgrid/internal/logger"
)

// Title is the window title.
const Title = "wolfgrid"

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *sdlinput.Poller
	assets   *assets.Server

	scene    *scene.Scene
	world    *world.State
	gizmos   *debug.Gizmos
	schedule *systems.Schedule
	frame    systems.Context
}

// New creates the window, renderer and world, and requests the configured map.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
		scene:  scene.New(),
		world:  world.New(),
		gizmos: &debug.Gizmos{},
	}
	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("asset_root", cfg.World.AssetRoot),
	)

	bindings, err := sdlinput.ParseBindings(cfg.Controls.Keys())
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	g.assets = assets.NewServer(cfg.World.AssetRoot)

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		FOV:    cfg.Graphics.FOV,
	}, g.assets)
	if err != nil {
		g.assets.Close()
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = sdlinput.New(bindings)
	g.schedule = systems.Default()
	g.frame = systems.Context{
		World:        g.world,
		Scene:        g.scene,
		Assets:       g.assets,
		Gizmos:       g.gizmos,
		HUD:          g.window,
		TurnSpeed:    cfg.Controls.TurnSpeed,
		DebugOverlay: cfg.Graphics.DebugOverlay,
	}

	g.world.RequestMap(g.assets.LoadMap(cfg.World.Map))

	g.log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop. It returns when the window is closed or
// Escape is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		ev := g.input.Poll()
		if ev.Quit {
			g.running = false
			break
		}
		if ev.Resized {
			g.renderer.Resize(g.window.GetSize())
		}

		// 2. Update
		if err := g.update(float32(dt)); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		g.render()

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("objects", g.scene.Len()),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.assets != nil {
		g.assets.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// update runs the frame schedule.
func (g *Game) update(dt float32) error {
	g.frame.Input = g.input.Snapshot()
	g.frame.DT = dt
	return g.schedule.Run(&g.frame)
}

// render draws the scene from the active camera.
func (g *Game) render() {
	cam, ok := g.scene.Get(g.world.ActiveCamera)
	if !ok {
		cam = nil
	}
	g.renderer.Render(g.scene, cam, g.gizmos)
}
