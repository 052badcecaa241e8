// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/wolfgrid/internal/engine/input"
)

// Validation errors.
var (
	ErrInvalidResolution = errors.New("window width and height must be positive")
	ErrInvalidFOV        = errors.New("field of view must be between 1 and 179 degrees")
	ErrInvalidTurnSpeed  = errors.New("turn speed must be positive")
	ErrMissingKey        = errors.New("movement key binding is empty")
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Controls ControlsConfig `yaml:"controls"`
	World    WorldConfig    `yaml:"world"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // Vertical field of view in degrees

	// DebugOverlay draws the map grid over the floor.
	DebugOverlay bool `yaml:"debug_overlay"`
}

// ControlsConfig holds mouse look and movement key settings.
// Keys are SDL key names ("W", "Up", "Left Shift").
type ControlsConfig struct {
	TurnSpeed   float32 `yaml:"turn_speed"` // Radians per pixel of mouse motion
	Forward     string  `yaml:"forward"`
	Backward    string  `yaml:"backward"`
	StrafeLeft  string  `yaml:"strafe_left"`
	StrafeRight string  `yaml:"strafe_right"`
}

// WorldConfig holds asset locations and the map to load at startup.
type WorldConfig struct {
	AssetRoot string `yaml:"asset_root"`
	Map       string `yaml:"map"` // Relative to AssetRoot
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        60,
		},
		Controls: ControlsConfig{
			TurnSpeed:   0.003,
			Forward:     "W",
			Backward:    "S",
			StrafeLeft:  "A",
			StrafeRight: "D",
		},
		World: WorldConfig{
			AssetRoot: "assets",
			Map:       "maps/e1m1.yaml",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings the game cannot run without.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FOV < 1 || c.Graphics.FOV > 179 {
		return fmt.Errorf("%w: %v", ErrInvalidFOV, c.Graphics.FOV)
	}
	if c.Controls.TurnSpeed <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTurnSpeed, c.Controls.TurnSpeed)
	}
	keys := map[string]string{
		"forward":      c.Controls.Forward,
		"backward":     c.Controls.Backward,
		"strafe_left":  c.Controls.StrafeLeft,
		"strafe_right": c.Controls.StrafeRight,
	}
	for action, key := range keys {
		if key == "" {
			return fmt.Errorf("%w: %s", ErrMissingKey, action)
		}
	}
	return nil
}

// Keys maps each movement action to its configured key name.
func (c ControlsConfig) Keys() map[input.Action]string {
	return map[input.Action]string{
		input.ActionForward:     c.Forward,
		input.ActionBackward:    c.Backward,
		input.ActionStrafeLeft:  c.StrafeLeft,
		input.ActionStrafeRight: c.StrafeRight,
	}
}
