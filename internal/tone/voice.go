// Package tone makes a sinewave.Wave audible.
package tone

import (
	"errors"
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/sinewave-shape/internal/sinewave"
)

// ErrPitchTooHigh is returned when the sample rate cannot represent the
// requested pitch (Nyquist).
var ErrPitchTooHigh = errors.New("tone: sample rate must be at least 2 times greater than pitch")

// ErrNonFinite is returned for waves carrying NaN or infinite parameters.
var ErrNonFinite = errors.New("tone: wave parameters must be finite")

// Voice is a beep.Streamer producing a sine whose pitch follows the wave's
// frequency and whose gain follows its amplitude ratio. The wave's phase
// offsets the oscillator, so animating the phase is audible as a slight
// chorus when two voices play together.
//
// SetWave may be called from the game loop while the speaker goroutine
// streams.
type Voice struct {
	sr        beep.SampleRate
	basePitch float64

	mu   sync.Mutex
	wave sinewave.Wave
	t    float64 // oscillator position in cycles, [0, 1)
}

// New returns a voice playing w at basePitch·w.Frequency() Hz.
func New(sr beep.SampleRate, basePitch float64, w sinewave.Wave) (*Voice, error) {
	v := &Voice{sr: sr, basePitch: basePitch}
	if err := v.SetWave(w); err != nil {
		return nil, err
	}
	return v, nil
}

// SetWave swaps the wave being played. The oscillator position is kept so
// parameter changes do not click.
func (v *Voice) SetWave(w sinewave.Wave) error {
	if !finite(w.Phase()) || !finite(w.AmplitudeRatio()) || !finite(v.pitch(w)) {
		return ErrNonFinite
	}
	if v.pitch(w)/float64(v.sr) >= 0.5 {
		return ErrPitchTooHigh
	}
	v.mu.Lock()
	v.wave = w
	v.mu.Unlock()
	return nil
}

// Wave returns the wave currently being played.
func (v *Voice) Wave() sinewave.Wave {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.wave
}

// Stream fills samples with the tone. It never runs out.
func (v *Voice) Stream(samples [][2]float64) (n int, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	dt := v.pitch(v.wave) / float64(v.sr)
	gain := v.wave.AmplitudeRatio()
	phase := v.wave.Phase()
	for i := range samples {
		s := gain * math.Sin(v.t*2*math.Pi+phase)
		samples[i][0] = s
		samples[i][1] = s
		_, v.t = math.Modf(v.t + dt)
	}
	return len(samples), true
}

func (*Voice) Err() error { return nil }

func (v *Voice) pitch(w sinewave.Wave) float64 {
	return v.basePitch * w.Frequency()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
