package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageSurface draws into an offscreen image that Draw copies to the screen.
type imageSurface struct {
	img           *ebiten.Image
	width, height int
}

func newImageSurface(width, height int) *imageSurface {
	s := &imageSurface{}
	s.Resize(width, height)
	return s
}

func (s *imageSurface) Resize(width, height int) {
	if s.img != nil && width == s.width && height == s.height {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.width, s.height = width, height
	if width > 0 && height > 0 {
		s.img = ebiten.NewImage(width, height)
	}
}

func (s *imageSurface) Release() {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
}

func (s *imageSurface) Background(c color.Color) {
	if s.img == nil {
		return
	}
	s.img.Fill(c)
}

func (s *imageSurface) Circle(x, y, diameter float64, c color.Color) {
	if s.img == nil || diameter <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(diameter/2), c, true)
}
