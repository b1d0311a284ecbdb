// Package sinewave generates the outline of a sine curve inside a rectangle.
//
// A Wave holds four parameters: phase (radians), amplitude ratio, frequency
// and an amplitude modulation mode. Sample turns a Wave and a Rect into a
// Path, one point per step along the x axis, ready to be stroked by any
// renderer. Interpolate blends two Waves for a progress fraction so an
// external animation clock can morph one wave into another frame by frame.
//
// Usage:
//
//	w := sinewave.New(
//	  sinewave.WithAmplitudeRatio(0.75),
//	  sinewave.WithFrequency(8),
//	  sinewave.WithModulation(sinewave.ModulationEdges),
//	)
//	path := sinewave.Sample(w, sinewave.Rect{Width: 300, Height: 200}, sinewave.DefaultStep)
//
// Everything in this package is pure: no shared state, no I/O, safe for
// concurrent use.
package sinewave
