package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformVec3(t *testing.T) {
	got := Translate(10, 20, 30).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestCompose(t *testing.T) {
	// Scale X by 2, rotate 90 degrees about Z, then move to (5, 0, 0):
	// local (1,0,0) -> (2,0,0) -> (0,2,0) -> (5,2,0)
	m := Compose(Vec3{5, 0, 0}, QuatFromRotationZ(float32(math.Pi/2)), Vec3{2, 1, 1})
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{5, 2, 0}
	if got.Distance(want) > 1e-5 {
		t.Errorf("Compose: got %v, want %v", got, want)
	}
}

func TestLookAt(t *testing.T) {
	// A point straight ahead of the eye lands on the view -Z axis.
	eye := Vec3{1, 1, 0.5}
	view := LookAt(eye, eye.Add(UnitX), UnitZ)
	got := view.TransformVec3(eye.Add(UnitX.Scale(3)))
	want := Vec3{0, 0, -3}
	if got.Distance(want) > 1e-5 {
		t.Errorf("LookAt: got %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/2), 1, 0.1, 100)
	// fov 90 degrees: focal length 1
	if math.Abs(float64(m[0]-1)) > 1e-5 || math.Abs(float64(m[5]-1)) > 1e-5 {
		t.Errorf("Perspective focal terms: got (%f, %f), want (1, 1)", m[0], m[5])
	}
	if m[11] != -1 {
		t.Errorf("Perspective w term: got %f, want -1", m[11])
	}
}
