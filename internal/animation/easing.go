// Package animation drives sinewave.Interpolate from a clock.
//
// The sinewave package only knows how to blend two waves for a progress
// value. This package owns the time side: durations, easing curves,
// repeat/autoreverse and spring smoothing for interactive controls.
package animation

import "math"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// EaseOut decelerates towards the end (quadratic).
func EaseOut(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseInOut accelerates, then decelerates (sinusoidal).
func EaseInOut(t float64) float64 { return 0.5 - 0.5*math.Cos(math.Pi*t) }
