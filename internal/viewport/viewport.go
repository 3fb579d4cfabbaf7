package viewport

// Extents is the measured size of the hosting container in pixels.
type Extents struct {
	Width  int
	Height int
}

// Empty reports whether nothing can be drawn at these extents.
func (e Extents) Empty() bool {
	return e.Width <= 0 || e.Height <= 0
}

// Resizer is the drawing surface the adapter keeps in step with the container.
type Resizer interface {
	Resize(width, height int)
}

// Adapter tracks container extents and resizes the surface in place when they
// change. It never touches animation state.
type Adapter struct {
	extents Extents
	surface Resizer
	closed  bool
}

func New(surface Resizer) *Adapter {
	return &Adapter{surface: surface}
}

func (a *Adapter) Extents() Extents {
	return a.extents
}

// Measure publishes new container extents. Negative values count as zero.
// It reports whether the extents changed.
func (a *Adapter) Measure(width, height int) bool {
	if a.closed {
		return false
	}

	next := Extents{Width: max(width, 0), Height: max(height, 0)}
	if next == a.extents {
		return false
	}
	a.extents = next

	// an unmeasured container keeps the old surface
	if !next.Empty() {
		a.surface.Resize(next.Width, next.Height)
	}
	return true
}

// Close detaches the surface. Later measurements are ignored.
func (a *Adapter) Close() {
	a.closed = true
	a.surface = nil
}

func (a *Adapter) Closed() bool {
	return a.closed
}
