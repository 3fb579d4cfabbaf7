// Package export renders frames off screen for PNG and SVG snapshots.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	"github.com/iburimskiy/dot-grid/internal/grid"
	"github.com/iburimskiy/dot-grid/internal/noise"
	"github.com/iburimskiy/dot-grid/internal/sketch"
)

var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// svgPrecision is the number of SVG user units per pixel. svgo only takes
// integer coordinates.
const svgPrecision = 100

// Raster is a surface backed by an in-memory image.
type Raster struct {
	dc *gg.Context
}

func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Resize(width, height)
	return r
}

func (r *Raster) Resize(width, height int) {
	if r.dc != nil && r.dc.Width() == width && r.dc.Height() == height {
		return
	}
	r.dc = gg.NewContext(max(width, 0), max(height, 0))
}

func (r *Raster) Release() { r.dc = nil }

func (r *Raster) Background(c color.Color) {
	if r.dc == nil {
		return
	}
	r.dc.SetColor(c)
	r.dc.Clear()
}

func (r *Raster) Circle(x, y, diameter float64, c color.Color) {
	if r.dc == nil || diameter <= 0 {
		return
	}
	r.dc.SetColor(c)
	r.dc.DrawCircle(x, y, diameter/2)
	r.dc.Fill()
}

func (r *Raster) Context() *gg.Context { return r.dc }

func (r *Raster) EncodePNG(w io.Writer) error {
	if r.dc == nil {
		return errors.New("raster released")
	}
	return r.dc.EncodePNG(w)
}

type vectorOp struct {
	x, y, r float64
	fill    color.NRGBA
}

// Vector is a surface that records one frame and writes it as SVG.
type Vector struct {
	width, height int
	background    color.NRGBA
	ops           []vectorOp
}

func NewVector(width, height int) *Vector {
	return &Vector{width: max(width, 0), height: max(height, 0)}
}

func (v *Vector) Resize(width, height int) {
	v.width, v.height = max(width, 0), max(height, 0)
}

func (v *Vector) Release() { v.ops = nil }

// Background starts a new frame.
func (v *Vector) Background(c color.Color) {
	v.background = color.NRGBAModel.Convert(c).(color.NRGBA)
	v.ops = v.ops[:0]
}

func (v *Vector) Circle(x, y, diameter float64, c color.Color) {
	if diameter <= 0 {
		return
	}
	v.ops = append(v.ops, vectorOp{x: x, y: y, r: diameter / 2, fill: color.NRGBAModel.Convert(c).(color.NRGBA)})
}

func (v *Vector) Len() int { return len(v.ops) }

func (v *Vector) WriteSVG(w io.Writer) {
	canvas := svg.New(w)
	canvas.Start(v.width, v.height)
	canvas.Rect(0, 0, v.width, v.height, fillStyle(v.background))
	canvas.Gtransform(fmt.Sprintf("scale(%g)", 1.0/svgPrecision))
	for _, op := range v.ops {
		canvas.Circle(scaled(op.x), scaled(op.y), scaled(op.r), fillStyle(op.fill))
	}
	canvas.Gend()
	canvas.End()
}

func scaled(v float64) int {
	return int(v*svgPrecision + 0.5)
}

func fillStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f", c.R, c.G, c.B, float64(c.A)/255)
}

// Format returns the snapshot format for the file extension of path.
func Format(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".svg":
		return ext[1:], nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// NewSurface returns a snapshot surface for the file extension of path.
func NewSurface(path string, width, height int) (sketch.Surface, error) {
	format, err := Format(path)
	if err != nil {
		return nil, err
	}
	if format == "svg" {
		return NewVector(width, height), nil
	}
	return NewRaster(width, height), nil
}

// Write encodes a surface made by NewSurface.
func Write(w io.Writer, surface sketch.Surface) error {
	switch s := surface.(type) {
	case *Raster:
		return s.EncodePNG(w)
	case *Vector:
		s.WriteSVG(w)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedFormat, surface)
	}
}

// Save paints the renderer's current frame to path without advancing its clock.
func Save(path string, r *grid.Renderer, width, height int) error {
	surface, err := NewSurface(path, width, height)
	if err != nil {
		return err
	}
	defer surface.Release()

	r.Paint(surface, width, height)
	return WriteFile(path, surface)
}

func WriteFile(path string, surface sketch.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, surface); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Snapshot mounts an instance on an offscreen surface with the pointer
// entered at the center, advances frames and writes the last one to path.
// It returns the frame written.
func Snapshot(path string, frames int, params grid.Params, field noise.Field, width, height int) (int64, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("snapshot needs a positive size, got %dx%d", width, height)
	}

	surface, err := NewSurface(path, width, height)
	if err != nil {
		return 0, err
	}

	host := sketch.NewHost()
	inst := sketch.Mount(host, sketch.Options{
		Params:     params,
		Field:      field,
		NewSurface: func(int, int) sketch.Surface { return surface },
		Width:      width,
		Height:     height,
	})
	defer inst.Teardown()

	host.Pointer.Publish(sketch.PointerEvent{
		Kind: sketch.PointerEnter,
		X:    float64(width) / 2,
		Y:    float64(height) / 2,
	})
	for i := 0; i < max(frames, 1); i++ {
		host.Frames.Publish(struct{}{})
	}

	if err := WriteFile(path, surface); err != nil {
		return 0, err
	}

	frame := inst.Renderer().Frame()
	slog.Info("Wrote snapshot", "path", path, "frame", frame)
	return frame, nil
}
