package render

import "image/color"

// Call is one recorded draw.
type Call struct {
	Op         string
	Key        string
	X, Y, W, H float64
	Alpha      float64
	Width      float64 // stroke width
	Color      color.RGBA
	Text       string
}

// Recorder is a Sink that keeps every call, for tests and headless runs.
type Recorder struct {
	Images map[string]bool
	Calls  []Call
}

func NewRecorder(images ...string) *Recorder {
	r := &Recorder{Images: map[string]bool{}}
	for _, k := range images {
		r.Images[k] = true
	}
	return r
}

func (r *Recorder) HasImage(key string) bool {
	return r.Images[key]
}

func (r *Recorder) DrawImage(key string, x, y, w, h, alpha float64) {
	r.Calls = append(r.Calls, Call{Op: "image", Key: key, X: x, Y: y, W: w, H: h, Alpha: alpha})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "fill", X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, clr color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "stroke", X: x, Y: y, W: w, H: h, Width: width, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "circle", X: cx, Y: cy, W: radius, Color: clr})
}

func (r *Recorder) DrawText(s string, x, y float64, clr color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "text", X: x, Y: y, Color: clr, Text: s})
}

// Texts returns the drawn strings in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Ops returns the calls with the given op.
func (r *Recorder) Ops(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
