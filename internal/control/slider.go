// Package control maps pointer positions to parameter values.
//
// It knows nothing about ebiten: the game hands it cursor coordinates and
// draws whatever state it reports.
package control

import "math"

// Slider is a horizontal track mapping [X, X+Width] to [Min, Max].
type Slider struct {
	Label    string
	Min, Max float64
	X, Y     float64
	Width    float64
	Height   float64

	value    float64
	dragging bool
	held     bool // button state seen on the previous Drag call
}

// NewSlider returns a slider set to value.
func NewSlider(label string, lo, hi, value float64) *Slider {
	s := &Slider{Label: label, Min: lo, Max: hi}
	s.Set(value)
	return s
}

// Value returns the current value, always within [Min, Max].
func (s *Slider) Value() float64 { return s.value }

// Set stores v saturated to the slider range.
func (s *Slider) Set(v float64) {
	lo, hi := s.Min, s.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	s.value = math.Max(lo, math.Min(hi, v))
}

// Fraction returns the knob position along the track in [0, 1].
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.value - s.Min) / (s.Max - s.Min)
}

// KnobX returns the x coordinate of the knob center.
func (s *Slider) KnobX() float64 {
	return s.X + s.Fraction()*s.Width
}

// Contains reports whether (x, y) lies over the track.
func (s *Slider) Contains(x, y float64) bool {
	return x >= s.X && x <= s.X+s.Width && y >= s.Y && y <= s.Y+s.Height
}

// ValueAt maps a cursor x to the value the slider would take there.
func (s *Slider) ValueAt(x float64) float64 {
	if s.Width <= 0 {
		return s.value
	}
	f := (x - s.X) / s.Width
	f = math.Max(0, math.Min(1, f))
	return s.Min + f*(s.Max-s.Min)
}

// Drag updates the slider from one frame of pointer state and reports
// whether the value changed. A drag starts only on the frame the button goes
// down over the track and continues, even off the track, until the button
// is released. Holding the button elsewhere and moving onto the track does
// nothing.
func (s *Slider) Drag(x, y float64, pressed bool) bool {
	justPressed := pressed && !s.held
	s.held = pressed
	if !pressed {
		s.dragging = false
		return false
	}
	if !s.dragging {
		if !justPressed || !s.Contains(x, y) {
			return false
		}
		s.dragging = true
	}

	old := s.value
	s.Set(s.ValueAt(x))
	return s.value != old
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.dragging }
