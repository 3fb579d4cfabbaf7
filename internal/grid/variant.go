package grid

import (
	"fmt"
	"image/color"

	"github.com/iburimskiy/dot-grid/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownVariant = config.ErrUnknownVariant

// Reach selects the distance the pointer influence fades out over.
type Reach int

const (
	// ReachDiagonal fades over the surface diagonal.
	ReachDiagonal Reach = iota
	// ReachCursor fades over a fixed cursor range.
	ReachCursor
)

// Params are the fixed visual parameters of one variant.
type Params struct {
	Name string

	Gap       float64
	XScale    float64
	YScale    float64
	TimeScale float64

	MaxExpansion float64
	Reach        Reach
	CursorRange  float64
	Clamp        bool
	// Gated applies expansion only while the pointer is over the surface.
	Gated bool

	Background color.NRGBA
	Fill       color.NRGBA
}

// Pattern is the always-active variant: expansion up to 2x, fading over the diagonal.
func Pattern() Params {
	return Params{
		Name:         "pattern",
		Gap:          config.Gap,
		XScale:       config.XScale,
		YScale:       config.YScale,
		TimeScale:    config.TimeStep,
		MaxExpansion: 2,
		Reach:        ReachDiagonal,
		Background:   mustHex("#ffffff", 255),
		Fill:         mustHex("#000000", config.FillAlpha),
	}
}

// Cursor is the hover variant: expansion up to 1.5x within cursorRange of the pointer.
func Cursor(cursorRange float64) Params {
	if !(cursorRange > 0) {
		cursorRange = config.DefaultCursorRange
	}
	return Params{
		Name:         "cursor",
		Gap:          config.Gap,
		XScale:       config.XScale,
		YScale:       config.YScale,
		TimeScale:    config.TimeStep,
		MaxExpansion: 1.5,
		Reach:        ReachCursor,
		CursorRange:  cursorRange,
		Clamp:        true,
		Gated:        true,
		Background:   mustHex("#f5efff", 255),
		Fill:         mustHex("#cdc1ff", config.FillAlpha),
	}
}

// Lookup returns the params for a variant name.
func Lookup(name string, cursorRange float64) (Params, error) {
	switch config.Variants[name] {
	case "pattern":
		return Pattern(), nil
	case "cursor":
		return Cursor(cursorRange), nil
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}

func mustHex(s string, alpha uint8) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}
