package sinewave

import (
	"fmt"
	"math"
)

// Modulation selects the envelope applied to the amplitude across the x axis.
type Modulation int

const (
	// ModulationNone keeps the amplitude flat.
	ModulationNone Modulation = iota

	// ModulationCenter shortens the amplitude at the center and lets it grow
	// towards the edges.
	ModulationCenter

	// ModulationEdges shortens the amplitude at the edges and lets it grow
	// towards the middle.
	ModulationEdges
)

// String returns the label used by UI selectors.
func (m Modulation) String() string {
	switch m {
	case ModulationCenter:
		return "center"
	case ModulationEdges:
		return "edges"
	default:
		return "none"
	}
}

// ParseModulation is the inverse of Modulation.String.
func ParseModulation(s string) (Modulation, error) {
	switch s {
	case "none":
		return ModulationNone, nil
	case "center":
		return ModulationCenter, nil
	case "edges":
		return ModulationEdges, nil
	}
	return ModulationNone, fmt.Errorf("sinewave: unknown modulation %q", s)
}

const (
	// MinFrequency is the lowest number of cycles a wave may span.
	MinFrequency = 1.0

	defaultAmplitudeRatio = 0.25
)

// Wave is the parameter set of a single sine curve.
//
// Amplitude ratio and frequency are kept in range by their setters, so a Wave
// is valid no matter how it was last modified. The zero value is a flat
// wave with frequency 1.
type Wave struct {
	phase          float64
	amplitudeRatio float64
	frequency      float64
	modulation     Modulation
}

// Option configures a Wave built by New.
type Option func(*Wave)

// WithPhase sets the phase in radians.
func WithPhase(radians float64) Option {
	return func(w *Wave) { w.SetPhase(radians) }
}

// WithAmplitudeRatio sets the amplitude ratio, clamped to [0, 1].
func WithAmplitudeRatio(v float64) Option {
	return func(w *Wave) { w.SetAmplitudeRatio(v) }
}

// WithFrequency sets the frequency, clamped to [1, +Inf).
func WithFrequency(v float64) Option {
	return func(w *Wave) { w.SetFrequency(v) }
}

// WithModulation sets the amplitude modulation mode.
func WithModulation(m Modulation) Option {
	return func(w *Wave) { w.SetModulation(m) }
}

// New returns a Wave with phase 0, amplitude ratio 0.25, frequency 1 and no
// modulation, then applies opts in order.
func New(opts ...Option) Wave {
	w := Wave{
		amplitudeRatio: defaultAmplitudeRatio,
		frequency:      MinFrequency,
		modulation:     ModulationNone,
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Phase returns the phase in radians, exactly as it was set.
func (w Wave) Phase() float64 { return w.phase }

// AmplitudeRatio returns the wave's peak height as a fraction of half the
// rectangle height.
func (w Wave) AmplitudeRatio() float64 { return w.amplitudeRatio }

// Frequency returns the number of cycles spanning the rectangle width.
func (w Wave) Frequency() float64 {
	// Wave{} never went through SetFrequency.
	if w.frequency < MinFrequency {
		return MinFrequency
	}
	return w.frequency
}

// Modulation returns the amplitude modulation mode.
func (w Wave) Modulation() Modulation { return w.modulation }

// SetPhase stores radians verbatim. Any real value is legal since the
// sampler relies on the periodicity of sine.
func (w *Wave) SetPhase(radians float64) { w.phase = radians }

// SetAmplitudeRatio stores v saturated to [0, 1].
func (w *Wave) SetAmplitudeRatio(v float64) { w.amplitudeRatio = clamp(v, 0, 1) }

// SetFrequency stores v saturated to [1, +Inf).
func (w *Wave) SetFrequency(v float64) { w.frequency = clamp(v, MinFrequency, math.Inf(1)) }

// SetModulation stores m verbatim.
func (w *Wave) SetModulation(m Modulation) { w.modulation = m }

// finite reports whether every continuous parameter is a real number.
func (w Wave) finite() bool {
	return isFinite(w.phase) && isFinite(w.amplitudeRatio) && isFinite(w.Frequency())
}

// clamp saturates v to [lo, hi]. NaN is passed through so the sampler can
// reject it.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
