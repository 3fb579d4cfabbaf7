package noise

import (
	"math"
	"testing"
)

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlin(99)
	b := NewPerlin(99)

	for i := 0; i < 50; i++ {
		x, y, z := float64(i)*0.3, float64(i)*0.17, float64(i)*0.01
		if va, vb := a.Value(x, y, z), b.Value(x, y, z); va != vb {
			t.Fatalf("Expected equal values at (%v, %v, %v), got %v and %v", x, y, z, va, vb)
		}
		if va, again := a.Value(x, y, z), a.Value(x, y, z); va != again {
			t.Fatalf("Expected repeat lookup to match, got %v and %v", va, again)
		}
	}
}

func TestPerlinRange(t *testing.T) {
	p := NewPerlin(7)
	for x := 10.0; x < 1000; x += 20 {
		for y := 10.0; y < 1000; y += 20 {
			v := p.Value(x*0.015, y*0.02, 3.7)
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("Expected value in [0, 1] at (%v, %v), got %v", x, y, v)
			}
		}
	}
}

func TestPerlinSmoothOverTime(t *testing.T) {
	p := NewPerlin(3)
	const bound = 0.1

	for _, pt := range [][2]float64{{10, 10}, {130, 250}, {770, 430}} {
		x, y := pt[0]*0.015, pt[1]*0.02
		prev := p.Value(x, y, 0)
		for frame := 1; frame < 600; frame++ {
			v := p.Value(x, y, float64(frame)*0.01)
			if d := math.Abs(v - prev); d >= bound {
				t.Fatalf("Expected step below %v at %v frame %d, got %v", bound, pt, frame, d)
			}
			prev = v
		}
	}
}

func TestPerlinNonFinite(t *testing.T) {
	p := NewPerlin(1)
	if v := p.Value(math.NaN(), 0, 0); v < 0 || v > 1 || math.IsNaN(v) {
		t.Errorf("Expected NaN input to stay in [0, 1], got %v", v)
	}
}
