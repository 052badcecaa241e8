package debug

import (
	"testing"

	"github.com/Faultbox/wolfgrid/pkg/math"
)

func TestRay(t *testing.T) {
	var g Gizmos
	g.Ray(math.Vec3{X: 1}, math.UnitZ, Blue)

	lines := g.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].To != (math.Vec3{X: 1, Z: 1}) {
		t.Errorf("ray end: got %v", lines[0].To)
	}
	if lines[0].Color != Blue {
		t.Errorf("ray color: got %v", lines[0].Color)
	}
}

func TestVertices(t *testing.T) {
	var g Gizmos
	g.Line(math.Vec3{}, math.UnitX, Red)

	v := g.Vertices()
	if len(v) != 2*VertexStride {
		t.Fatalf("expected %d floats, got %d", 2*VertexStride, len(v))
	}
	// Second vertex: position (1,0,0), color red
	want := []float32{1, 0, 0, 1, 0, 0, 1}
	for i, f := range want {
		if v[VertexStride+i] != f {
			t.Errorf("vertex[1][%d]: got %v, want %v", i, v[VertexStride+i], f)
		}
	}
}

func TestClear(t *testing.T) {
	var g Gizmos
	g.Ray(math.Vec3{}, math.UnitX, Red)
	g.Clear()
	if len(g.Lines()) != 0 {
		t.Errorf("expected no lines after Clear, got %d", len(g.Lines()))
	}
}

func TestGrid(t *testing.T) {
	var g Gizmos
	g.Grid(3, 2, 0.01, Gray)

	// (3+1) vertical + (2+1) horizontal
	if got := len(g.Lines()); got != 7 {
		t.Fatalf("expected 7 grid lines, got %d", got)
	}

	first := g.Lines()[0]
	if first.From != (math.Vec3{X: -0.5, Y: -0.5, Z: 0.01}) || first.To != (math.Vec3{X: -0.5, Y: 1.5, Z: 0.01}) {
		t.Errorf("first line: got %v -> %v", first.From, first.To)
	}

	g.Clear()
	g.Grid(0, 5, 0, Gray)
	if len(g.Lines()) != 0 {
		t.Error("empty grid should queue nothing")
	}
}
