package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/dot-grid/internal/config"
	"github.com/iburimskiy/dot-grid/internal/export"
	"github.com/iburimskiy/dot-grid/internal/grid"
	"github.com/iburimskiy/dot-grid/internal/noise"
	"github.com/iburimskiy/dot-grid/internal/sketch"
	"github.com/iburimskiy/dot-grid/internal/viewport"
	"github.com/ncruces/zenity"
)

var errNotMeasured = errors.New("window not measured yet")

// Game hosts one grid instance inside an ebiten window. It turns Layout,
// cursor polling and Draw into the instance's resize, pointer and frame events.
type Game struct {
	ctx     context.Context
	host    *sketch.Host
	inst    *sketch.Instance
	surface *imageSurface

	// last values published to the host
	extents viewport.Extents
	cursorX int
	cursorY int
	inside  bool

	debug   bool
	lastErr error
}

// New mounts the instance. Cancelling ctx tears it down on the next update.
func New(ctx context.Context, params grid.Params, field noise.Field) *Game {
	g := &Game{ctx: ctx, host: sketch.NewHost()}
	g.inst = sketch.Mount(g.host, sketch.Options{
		Params: params,
		Field:  field,
		NewSurface: func(w, h int) sketch.Surface {
			g.surface = newImageSurface(w, h)
			return g.surface
		},
	})
	return g
}

func (g *Game) Update() error {
	if g.inst.TornDown() {
		return ebiten.Termination
	}

	select {
	case <-g.ctx.Done():
		g.Close()
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.lastErr = g.saveSnapshotDialog()
	}

	g.trackPointer()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.host.Frames.Publish(struct{}{})

	if g.inst.TornDown() {
		return
	}
	if g.inst.Extents().Empty() {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}

	if s := g.surface; s != nil && s.img != nil {
		screen.DrawImage(s.img, nil)
	}

	debug := ""
	if g.debug {
		debug = g.inst.DebugLine(ebiten.ActualTPS())
	}
	if status := sketch.StatusLine(debug, g.lastErr); status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	e := viewport.Extents{Width: outsideWidth, Height: outsideHeight}
	if e != g.extents {
		g.extents = e
		g.host.Resized.Publish(e)
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Close tears the instance down. Ebiten may still call Layout and Draw
// afterwards; those events reach no subscriber.
func (g *Game) Close() {
	g.inst.Teardown()
	g.surface = nil
}

func (g *Game) trackPointer() {
	x, y := ebiten.CursorPosition()
	events, inside := sketch.PointerTransitions(g.inside, g.cursorX, g.cursorY, x, y, g.inst.Extents())
	g.cursorX, g.cursorY, g.inside = x, y, inside

	for _, ev := range events {
		g.host.Pointer.Publish(ev)
	}
}

func (g *Game) saveSnapshotDialog() error {
	e := g.inst.Extents()
	if e.Empty() {
		return errNotMeasured
	}

	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.ConfirmOverwrite(),
		zenity.Filename("dotgrid.png"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.svg"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	if err := export.Save(filename, g.inst.Renderer(), e.Width, e.Height); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	slog.Info("Saved snapshot", "path", filename, "frame", g.inst.Renderer().Frame())
	return nil
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
// It must be called from the main goroutine.
func Run(ctx context.Context, settings config.Settings, params grid.Params, field noise.Field) error {
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Dot Grid - " + params.Name + " (S: snapshot, D: debug, Esc/Q: quit)")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := New(ctx, params, field)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
