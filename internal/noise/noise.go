package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Field is a deterministic smooth value over two spatial axes and time.
// Values are in [0, 1].
type Field interface {
	Value(x, y, t float64) float64
}

const (
	alpha   = 2
	beta    = 2
	octaves = 3
)

// Perlin is a Field backed by layered Perlin noise.
type Perlin struct {
	noise *perlin.Perlin
	seed  int64
}

func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		noise: perlin.NewPerlin(alpha, beta, octaves, seed),
		seed:  seed,
	}
}

func (p *Perlin) Value(x, y, t float64) float64 {
	// raw octave sum is centered on zero
	v := 0.5 + p.noise.Noise3D(x, y, t)/2
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (p *Perlin) Seed() int64 {
	return p.seed
}
