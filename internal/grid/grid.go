package grid

import (
	"image/color"
	"math"

	"github.com/iburimskiy/dot-grid/internal/noise"
)

// Canvas receives the draw calls of one frame.
type Canvas interface {
	Background(c color.Color)
	Circle(x, y, diameter float64, c color.Color)
}

// Pointer is the last known pointer position and whether it is over the surface.
type Pointer struct {
	X, Y float64
	Over bool
}

// Renderer paints the noise-driven dot lattice. It owns the animation clock
// and pointer state; all methods run on the host's frame thread.
type Renderer struct {
	params  Params
	field   noise.Field
	frame   int64
	pointer Pointer
}

func NewRenderer(params Params, field noise.Field) *Renderer {
	return &Renderer{
		params: params,
		field:  field,
	}
}

func (r *Renderer) Params() Params { return r.params }

func (r *Renderer) Frame() int64 { return r.frame }

func (r *Renderer) Pointer() Pointer { return r.pointer }

func (r *Renderer) SetPointer(x, y float64) {
	r.pointer.X = x
	r.pointer.Y = y
}

func (r *Renderer) SetPointerOver(over bool) {
	r.pointer.Over = over
}

// Render advances the clock by one frame and paints it. It returns the number
// of circles painted.
func (r *Renderer) Render(c Canvas, width, height int) int {
	r.frame++
	return r.Paint(c, width, height)
}

// Paint draws the current frame without advancing the clock.
func (r *Renderer) Paint(c Canvas, width, height int) int {
	p := r.params
	c.Background(p.Background)

	if width <= 0 || height <= 0 || !(p.Gap > 0) {
		return 0
	}

	w, h := float64(width), float64(height)
	count := 0
	for x := p.Gap / 2; x < w; x += p.Gap {
		for y := p.Gap / 2; y < h; y += p.Gap {
			c.Circle(x, y, r.Diameter(x, y, width, height), p.Fill)
			count++
		}
	}
	return count
}

// Diameter is the circle size at lattice point (x, y) for the current frame,
// always within [0, Gap*MaxExpansion].
func (r *Renderer) Diameter(x, y float64, width, height int) float64 {
	p := r.params
	n := r.field.Value(x*p.XScale, y*p.YScale, float64(r.frame)*p.TimeScale)
	d := n * p.Gap * r.ExpansionFactor(x, y, width, height)

	if math.IsNaN(d) || d < 0 {
		return 0
	}
	if limit := p.Gap * p.MaxExpansion; d > limit {
		return limit
	}
	return d
}

// ExpansionFactor maps the pointer distance of (x, y) onto [MaxExpansion, 1].
func (r *Renderer) ExpansionFactor(x, y float64, width, height int) float64 {
	p := r.params
	if p.Gated && !r.pointer.Over {
		return 1
	}

	var far float64
	switch p.Reach {
	case ReachCursor:
		far = p.CursorRange
	default:
		far = math.Hypot(float64(width), float64(height))
	}

	dist := math.Hypot(x-r.pointer.X, y-r.pointer.Y)
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		dist = far
	}

	f := mapRange(dist, 0, far, p.MaxExpansion, 1, p.Clamp)
	if f < 0 {
		return 0
	}
	return f
}

// mapRange linearly maps v from [inMin, inMax] to [outMin, outMax].
// An empty input range maps to outMax.
func mapRange(v, inMin, inMax, outMin, outMax float64, clamp bool) float64 {
	if inMax == inMin {
		return outMax
	}
	out := outMin + (v-inMin)/(inMax-inMin)*(outMax-outMin)
	if !clamp {
		return out
	}
	lo, hi := math.Min(outMin, outMax), math.Max(outMin, outMax)
	return math.Max(lo, math.Min(hi, out))
}
