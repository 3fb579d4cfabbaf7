// Package sketch mounts one animated dot grid: a viewport adapter, a grid
// renderer and the drawing surface they share, wired to a host's events.
package sketch

import (
	"log/slog"

	"github.com/iburimskiy/dot-grid/internal/bus"
	"github.com/iburimskiy/dot-grid/internal/grid"
	"github.com/iburimskiy/dot-grid/internal/noise"
	"github.com/iburimskiy/dot-grid/internal/viewport"
)

// Surface is a drawing surface an instance owns between Mount and Teardown.
type Surface interface {
	grid.Canvas
	Resize(width, height int)
	Release()
}

// NewSurfaceFunc creates a surface. Width and height may be zero before the
// first measurement.
type NewSurfaceFunc func(width, height int) Surface

type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerEnter
	PointerLeave
)

type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Host carries the events a host environment delivers.
type Host struct {
	Frames  *bus.Hub[struct{}]
	Resized *bus.Hub[viewport.Extents]
	Pointer *bus.Hub[PointerEvent]
}

func NewHost() *Host {
	return &Host{
		Frames:  bus.NewHub[struct{}](),
		Resized: bus.NewHub[viewport.Extents](),
		Pointer: bus.NewHub[PointerEvent](),
	}
}

type Options struct {
	Params     grid.Params
	Field      noise.Field
	NewSurface NewSurfaceFunc
	// Initial extents, zero if the container is not measured yet.
	Width, Height int
}

type Instance struct {
	renderer *grid.Renderer
	adapter  *viewport.Adapter
	surface  Surface

	unsubs   []func()
	tornDown bool
}

// Mount creates the surface and subscribes to the host's frame, resize and
// pointer events.
func Mount(host *Host, opts Options) *Instance {
	i := &Instance{
		renderer: grid.NewRenderer(opts.Params, opts.Field),
		surface:  opts.NewSurface(max(opts.Width, 0), max(opts.Height, 0)),
	}
	i.adapter = viewport.New(i.surface)
	i.adapter.Measure(opts.Width, opts.Height)

	i.unsubs = []func(){
		host.Frames.Subscribe(func(struct{}) { i.Tick() }),
		host.Resized.Subscribe(func(e viewport.Extents) { i.Resize(e.Width, e.Height) }),
		host.Pointer.Subscribe(i.HandlePointer),
	}

	slog.Info("Mounted grid", "variant", opts.Params.Name, "width", opts.Width, "height", opts.Height)
	return i
}

// Tick advances the clock and paints one frame. It reports the number of
// circles painted.
func (i *Instance) Tick() int {
	if i.tornDown {
		return 0
	}
	e := i.adapter.Extents()
	return i.renderer.Render(i.surface, e.Width, e.Height)
}

func (i *Instance) Resize(width, height int) {
	if i.tornDown {
		return
	}
	if i.adapter.Measure(width, height) {
		slog.Debug("Resized grid", "width", width, "height", height)
	}
}

func (i *Instance) HandlePointer(ev PointerEvent) {
	if i.tornDown {
		return
	}
	switch ev.Kind {
	case PointerEnter:
		i.renderer.SetPointer(ev.X, ev.Y)
		i.renderer.SetPointerOver(true)
	case PointerLeave:
		i.renderer.SetPointerOver(false)
	default:
		i.renderer.SetPointer(ev.X, ev.Y)
	}
}

// Teardown stops frames, drops the resize and pointer subscriptions and
// releases the surface. It is safe to call more than once.
func (i *Instance) Teardown() {
	if i.tornDown {
		return
	}
	i.tornDown = true

	for _, unsub := range i.unsubs {
		unsub()
	}
	i.unsubs = nil

	i.adapter.Close()
	i.surface.Release()
	i.surface = nil

	slog.Info("Tore down grid", "frames", i.renderer.Frame())
}

func (i *Instance) TornDown() bool { return i.tornDown }

// Surface returns the live surface, or nil after Teardown.
func (i *Instance) Surface() Surface { return i.surface }

func (i *Instance) Renderer() *grid.Renderer { return i.renderer }

func (i *Instance) Extents() viewport.Extents { return i.adapter.Extents() }

// PointerTransitions turns two cursor samples into pointer events. Crossing
// into the extents is an enter; crossing out is a final move then a leave;
// otherwise a changed position is a move.
func PointerTransitions(wasInside bool, prevX, prevY, x, y int, e viewport.Extents) (events []PointerEvent, inside bool) {
	inside = x >= 0 && y >= 0 && x < e.Width && y < e.Height
	at := PointerEvent{X: float64(x), Y: float64(y)}

	switch {
	case inside && !wasInside:
		at.Kind = PointerEnter
		events = []PointerEvent{at}
	case !inside && wasInside:
		at.Kind = PointerMove
		events = []PointerEvent{at, {Kind: PointerLeave}}
	case x != prevX || y != prevY:
		at.Kind = PointerMove
		events = []PointerEvent{at}
	}
	return events, inside
}
