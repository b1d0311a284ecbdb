package animation

import (
	"time"

	"github.com/iburimskiy/sinewave-shape/internal/sinewave"
)

// Transition morphs From into To over Duration.
//
// Advance is called once per frame with the frame's delta; Current returns
// the wave to sample for that frame. With Repeat the transition loops
// forever, and with AutoReverse every other cycle runs backwards.
type Transition struct {
	From, To    sinewave.Wave
	Duration    time.Duration
	Easing      Easing
	Repeat      bool
	AutoReverse bool

	elapsed time.Duration
}

// NewTransition returns a one-shot transition with the given easing.
// A nil easing means Linear.
func NewTransition(from, to sinewave.Wave, d time.Duration, e Easing) *Transition {
	return &Transition{From: from, To: to, Duration: d, Easing: e}
}

// Advance moves the clock forward by dt. Negative deltas are ignored.
func (t *Transition) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	t.elapsed += dt
	if !t.Repeat && t.elapsed > t.Duration {
		t.elapsed = t.Duration
	}
}

// Progress returns the linear, un-eased position inside the current cycle,
// in [0, 1]. Reversed cycles count down from 1 to 0.
func (t *Transition) Progress() float64 {
	if t.Duration <= 0 {
		return 1
	}
	if !t.Repeat {
		return float64(t.elapsed) / float64(t.Duration)
	}

	cycle := t.elapsed / t.Duration
	p := float64(t.elapsed%t.Duration) / float64(t.Duration)
	if t.AutoReverse && cycle%2 == 1 {
		return 1 - p
	}
	return p
}

// Eased returns Progress passed through the easing curve. Scenes animating
// values that are not wave parameters read it directly.
func (t *Transition) Eased() float64 {
	p := t.Progress()
	if t.Easing != nil {
		p = t.Easing(p)
	}
	return p
}

// Current returns the interpolated wave for the current time.
func (t *Transition) Current() sinewave.Wave {
	return sinewave.Interpolate(t.From, t.To, t.Eased())
}

// Done reports whether a one-shot transition reached its end. Repeating
// transitions are never done.
func (t *Transition) Done() bool {
	return !t.Repeat && t.elapsed >= t.Duration
}

// Retarget starts a new transition from the wave currently shown towards to,
// so a control moved mid-animation does not jump.
func (t *Transition) Retarget(to sinewave.Wave) {
	t.From = t.Current()
	t.To = to
	t.elapsed = 0
}
