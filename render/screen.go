package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var drawOp = &ebiten.DrawImageOptions{}

// Screen draws onto an ebiten image. Images are looked up by key in a table
// loaded once at startup.
type Screen struct {
	dst    *ebiten.Image
	images map[string]*ebiten.Image
	face   font.Face
}

// NewScreen wraps dst for one frame. face may be nil, in which case text is
// skipped.
func NewScreen(dst *ebiten.Image, images map[string]*ebiten.Image, face font.Face) *Screen {
	return &Screen{dst: dst, images: images, face: face}
}

func (s *Screen) HasImage(key string) bool {
	_, ok := s.images[key]
	return ok
}

func (s *Screen) DrawImage(key string, x, y, w, h, alpha float64) {
	img, ok := s.images[key]
	if !ok {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	s.dst.DrawImage(img, drawOp)
}

func (s *Screen) FillRect(x, y, w, h float64, clr color.RGBA) {
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Screen) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (s *Screen) FillCircle(cx, cy, r float64, clr color.RGBA) {
	vector.FillCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (s *Screen) DrawText(str string, x, y float64, clr color.RGBA) {
	if s.face == nil {
		return
	}
	// text.Draw positions the baseline; shift down by the ascent.
	ascent := s.face.Metrics().Ascent.Ceil()
	text.Draw(s.dst, str, s.face, int(x), int(y)+ascent, clr) //nolint:staticcheck // TODO: migrate to text/v2
}
