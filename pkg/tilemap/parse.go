package tilemap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wolfgrid/pkg/math"
)

// Map file errors.
var (
	ErrInvalidDimensions = errors.New("map width and height must be positive")
	ErrNoLayers          = errors.New("map has no layers")
	ErrRowCount          = errors.New("layer row count does not match map height")
	ErrRowWidth          = errors.New("layer row width does not match map width")
	ErrUnknownLegend     = errors.New("cell refers to unknown legend key")
	ErrInvalidLegendKey  = errors.New("legend key must be a single character")
)

// emptyCells are the runes that leave a cell unoccupied.
const emptyCells = ". "

// LegendEntry is the YAML description of one tile type.
type LegendEntry struct {
	Classes []string   `yaml:"classes"`
	Image   string     `yaml:"image"`
	Offset  [3]float32 `yaml:"offset"`
}

// File is the on-disk YAML layout of a map.
//
//	width: 3
//	height: 2
//	legend:
//	  "#": {classes: [block], image: textures/wall.png}
//	  "C": {classes: [camera]}
//	layers:
//	  - ["###", "#C."]
type File struct {
	Name   string                 `yaml:"name"`
	Width  int                    `yaml:"width"`
	Height int                    `yaml:"height"`
	Legend map[string]LegendEntry `yaml:"legend"`
	Layers [][]string             `yaml:"layers"`
}

// Parse decodes a YAML map document.
func Parse(data []byte) (*Map, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
	}
	return f.Build()
}

// Load reads and parses a map file. The map name defaults to the file's base name.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// Build validates the file and expands it into a Map.
func (f *File) Build() (*Map, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, f.Width, f.Height)
	}
	if len(f.Layers) == 0 {
		return nil, ErrNoLayers
	}

	legend := make(map[rune]LegendEntry, len(f.Legend))
	for key, entry := range f.Legend {
		r := []rune(key)
		if len(r) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLegendKey, key)
		}
		legend[r[0]] = entry
	}

	m := NewMap(f.Name, f.Width, f.Height, len(f.Layers))
	for li, rows := range f.Layers {
		if len(rows) != f.Height {
			return nil, fmt.Errorf("layer %d: %w: got %d, want %d", li, ErrRowCount, len(rows), f.Height)
		}
		for y, row := range rows {
			cells := []rune(row)
			if len(cells) != f.Width {
				return nil, fmt.Errorf("layer %d row %d: %w: got %d, want %d", li, y, ErrRowWidth, len(cells), f.Width)
			}
			for x, r := range cells {
				if strings.ContainsRune(emptyCells, r) {
					continue
				}
				entry, ok := legend[r]
				if !ok {
					return nil, fmt.Errorf("layer %d cell (%d,%d): %w: %q", li, x, y, ErrUnknownLegend, r)
				}
				m.Layers[li].Set(x, y, &TileDef{
					Position: math.Vec3{
						X: float32(x) + entry.Offset[0],
						Y: float32(y) + entry.Offset[1],
						Z: entry.Offset[2],
					},
					Index:   Index{X: x, Y: y},
					Classes: append([]string(nil), entry.Classes...),
					Image:   entry.Image,
				})
			}
		}
	}
	return m, nil
}
