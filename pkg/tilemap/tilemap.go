// Package tilemap defines layered tile maps: grids of tile definitions that the
// game turns into scene objects.
package tilemap

import (
	"fmt"

	"github.com/Faultbox/wolfgrid/pkg/math"
)

// Kind is the closed set of things a tile can expand into.
type Kind int

const (
	KindCamera Kind = iota // Player camera start
	KindBlock              // Solid wall block
	KindSprite             // Camera-facing billboard
)

// kinds lists every Kind in spawn order.
var kinds = [...]Kind{KindCamera, KindBlock, KindSprite}

// String returns the class tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindCamera:
		return "camera"
	case KindBlock:
		return "block"
	case KindSprite:
		return "sprite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Index is an integer grid coordinate.
type Index struct {
	X, Y int
}

// TileDef describes one placeable element of a map.
type TileDef struct {
	Position math.Vec3
	Index    Index
	Classes  []string
	Image    string
}

// HasClass reports whether the tile carries the given class tag.
func (t *TileDef) HasClass(class string) bool {
	for _, c := range t.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Kinds returns one Kind per recognized class tag, in spawn order.
// Unknown tags are ignored.
func (t *TileDef) Kinds() []Kind {
	var out []Kind
	for _, k := range kinds {
		if t.HasClass(k.String()) {
			out = append(out, k)
		}
	}
	return out
}

// Layer is a dense row-major grid of optional tiles.
type Layer struct {
	Width  int
	Height int
	Cells  []*TileDef
}

// NewLayer creates an empty layer.
func NewLayer(width, height int) *Layer {
	return &Layer{
		Width:  width,
		Height: height,
		Cells:  make([]*TileDef, width*height),
	}
}

// Get returns the tile at (x, y), or nil for an empty cell.
// Panics if (x, y) is outside the layer.
func (l *Layer) Get(x, y int) *TileDef {
	return l.Cells[l.index(x, y)]
}

// Set places a tile at (x, y). Panics if (x, y) is outside the layer.
func (l *Layer) Set(x, y int, tile *TileDef) {
	l.Cells[l.index(x, y)] = tile
}

func (l *Layer) index(x, y int) int {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		panic(fmt.Sprintf("tilemap: cell (%d,%d) outside %dx%d layer", x, y, l.Width, l.Height))
	}
	return y*l.Width + x
}

// Map is an ordered stack of layers sharing one size.
type Map struct {
	Name   string
	Width  int
	Height int
	Layers []*Layer
}

// NewMap creates a map with the given number of empty layers.
func NewMap(name string, width, height, layers int) *Map {
	m := &Map{Name: name, Width: width, Height: height}
	for i := 0; i < layers; i++ {
		m.Layers = append(m.Layers, NewLayer(width, height))
	}
	return m
}

// Each calls fn for every occupied cell, layer by layer, in row-major order.
func (m *Map) Each(fn func(layer int, tile *TileDef)) {
	for li, layer := range m.Layers {
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if tile := layer.Get(x, y); tile != nil {
					fn(li, tile)
				}
			}
		}
	}
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	out := &Map{Name: m.Name, Width: m.Width, Height: m.Height}
	for _, layer := range m.Layers {
		nl := NewLayer(layer.Width, layer.Height)
		for i, cell := range layer.Cells {
			if cell == nil {
				continue
			}
			c := *cell
			c.Classes = append([]string(nil), cell.Classes...)
			nl.Cells[i] = &c
		}
		out.Layers = append(out.Layers, nl)
	}
	return out
}

// Size returns the larger of the map's width and height.
func (m *Map) Size() int {
	return max(m.Width, m.Height)
}

// Center returns the ground-plane midpoint of the map.
func (m *Map) Center() math.Vec3 {
	return math.Vec3{X: float32(m.Width) / 2, Y: float32(m.Height) / 2}
}
