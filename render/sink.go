// Package render defines the draw surface the simulation emits to.
package render

import "image/color"

// Sink receives draw calls in painter's order. Coordinates are playfield
// pixels with the origin at the top-left.
type Sink interface {
	// HasImage reports whether an image is loaded for key.
	HasImage(key string) bool
	// DrawImage draws the image for key scaled to the w×h box at (x, y).
	// alpha is in [0,1].
	DrawImage(key string, x, y, w, h, alpha float64)
	FillRect(x, y, w, h float64, clr color.RGBA)
	StrokeRect(x, y, w, h, width float64, clr color.RGBA)
	FillCircle(cx, cy, r float64, clr color.RGBA)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, clr color.RGBA)
}

// WithAlpha scales a colour's alpha channel by a in [0,1].
func WithAlpha(clr color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	clr.A = uint8(float64(clr.A) * a)
	return clr
}
