package systems

import (
	"fmt"
)

// Stage orders groups of systems within a frame.
type Stage int

const (
	PreUpdate  Stage = iota // Map instantiation
	Update                  // Gameplay
	PostUpdate              // End-of-frame debug drawing

	stageCount
)

func (s Stage) String() string {
	switch s {
	case PreUpdate:
		return "pre_update"
	case Update:
		return "update"
	case PostUpdate:
		return "post_update"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// SystemFunc is one unit of per-frame work.
type SystemFunc func(ctx *Context) error

type system struct {
	name string
	fn   SystemFunc
}

// Schedule runs systems stage by stage, in registration order within a stage.
type Schedule struct {
	stages [stageCount][]system
}

// Add registers a system at the end of stage.
func (s *Schedule) Add(stage Stage, name string, fn SystemFunc) *Schedule {
	if stage < 0 || stage >= stageCount {
		panic(fmt.Sprintf("systems: invalid stage %d", int(stage)))
	}
	s.stages[stage] = append(s.stages[stage], system{name: name, fn: fn})
	return s
}

// Names lists the registered systems of a stage in run order.
func (s *Schedule) Names(stage Stage) []string {
	names := make([]string, 0, len(s.stages[stage]))
	for _, sys := range s.stages[stage] {
		names = append(names, sys.name)
	}
	return names
}

// Run executes one frame. It stops at the first failing system.
func (s *Schedule) Run(ctx *Context) error {
	for stage, list := range s.stages {
		for _, sys := range list {
			if err := sys.fn(ctx); err != nil {
				return fmt.Errorf("%s/%s: %w", Stage(stage), sys.name, err)
			}
		}
	}
	return nil
}

// Default returns the game's frame schedule. Map instantiation runs before
// anything in Update can observe the scene.
func Default() *Schedule {
	s := &Schedule{}
	s.Add(PreUpdate, "load_map", LoadMap)
	s.Add(Update, "select_camera", SelectCamera).
		Add(Update, "camera", Camera).
		Add(Update, "billboard", Billboard).
		Add(Update, "hud", HUD)
	s.Add(PostUpdate, "debug_axes", DebugAxes).
		Add(PostUpdate, "debug_grid", DebugGrid)
	return s
}
