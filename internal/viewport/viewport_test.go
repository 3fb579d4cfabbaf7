package viewport

import "testing"

type countingSurface struct {
	resizes []Extents
}

func (s *countingSurface) Resize(w, h int) {
	s.resizes = append(s.resizes, Extents{w, h})
}

func TestMeasurePublishes(t *testing.T) {
	s := &countingSurface{}
	a := New(s)

	if !a.Measure(800, 600) {
		t.Fatal("Expected first measure to change extents")
	}
	if a.Extents() != (Extents{800, 600}) {
		t.Errorf("Expected 800x600, got %+v", a.Extents())
	}
	if len(s.resizes) != 1 || s.resizes[0] != (Extents{800, 600}) {
		t.Errorf("Expected one resize to 800x600, got %v", s.resizes)
	}
}

func TestMeasureSameExtentsIsNoop(t *testing.T) {
	s := &countingSurface{}
	a := New(s)

	a.Measure(320, 240)
	if a.Measure(320, 240) {
		t.Error("Expected repeat measure to report no change")
	}
	a.Measure(320, 240)

	if len(s.resizes) != 1 {
		t.Errorf("Expected 1 resize, got %d", len(s.resizes))
	}
}

func TestMeasureNegativeAndZero(t *testing.T) {
	s := &countingSurface{}
	a := New(s)

	a.Measure(-20, 50)
	if a.Extents() != (Extents{0, 50}) {
		t.Errorf("Expected negative width clamped to 0, got %+v", a.Extents())
	}
	if !a.Extents().Empty() {
		t.Error("Expected extents to be empty")
	}
	if len(s.resizes) != 0 {
		t.Errorf("Expected no surface resize for empty extents, got %v", s.resizes)
	}
}

func TestMeasureAfterClose(t *testing.T) {
	s := &countingSurface{}
	a := New(s)
	a.Measure(100, 100)
	a.Close()
	a.Close()

	if a.Measure(200, 200) {
		t.Error("Expected measure after close to be ignored")
	}
	if a.Extents() != (Extents{100, 100}) {
		t.Errorf("Expected extents unchanged, got %+v", a.Extents())
	}
	if len(s.resizes) != 1 {
		t.Errorf("Expected no resize after close, got %v", s.resizes)
	}
}
