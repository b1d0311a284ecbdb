package tone_test

import (
	"math"
	"testing"

	"github.com/faiface/beep"
	"github.com/iburimskiy/sinewave-shape/internal/sinewave"
	"github.com/iburimskiy/sinewave-shape/internal/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRate = beep.SampleRate(8000)

// TestNew_PitchGuard verifies pitches at or above Nyquist are rejected.
func TestNew_PitchGuard(t *testing.T) {
	_, err := tone.New(sampleRate, 1000, sinewave.New(sinewave.WithFrequency(4)))
	assert.ErrorIs(t, err, tone.ErrPitchTooHigh)

	v, err := tone.New(sampleRate, 1000, sinewave.New(sinewave.WithFrequency(3)))
	require.NoError(t, err)

	err = v.SetWave(sinewave.New(sinewave.WithFrequency(10)))
	assert.ErrorIs(t, err, tone.ErrPitchTooHigh)
	assert.Equal(t, 3.0, v.Wave().Frequency(), "rejected wave is not applied")
}

// TestSetWave_NonFinite verifies NaN parameters are rejected.
func TestSetWave_NonFinite(t *testing.T) {
	v, err := tone.New(sampleRate, 100, sinewave.New())
	require.NoError(t, err)

	assert.ErrorIs(t, v.SetWave(sinewave.New(sinewave.WithPhase(math.NaN()))), tone.ErrNonFinite)
	assert.ErrorIs(t, v.SetWave(sinewave.New(sinewave.WithFrequency(math.Inf(1)))), tone.ErrNonFinite)
}

// TestVoice_Stream checks gain, stereo duplication and pitch.
func TestVoice_Stream(t *testing.T) {
	// 1000 Hz at 8 kHz: 8 samples per cycle.
	w := sinewave.New(sinewave.WithAmplitudeRatio(0.5), sinewave.WithFrequency(1))
	v, err := tone.New(sampleRate, 1000, w)
	require.NoError(t, err)

	samples := make([][2]float64, 16)
	n, ok := v.Stream(samples)
	require.True(t, ok)
	require.Equal(t, 16, n)

	assert.InDelta(t, 0.0, samples[0][0], 1e-12)
	assert.InDelta(t, 0.5, samples[2][0], 1e-12, "quarter cycle peaks at the gain")
	assert.InDelta(t, -0.5, samples[6][0], 1e-12)
	for i, s := range samples {
		assert.Equal(t, s[0], s[1], "sample %d", i)
		assert.LessOrEqual(t, math.Abs(s[0]), 0.5+1e-12)
		assert.InDelta(t, samples[i%8][0], s[0], 1e-9, "period of 8 samples")
	}
	assert.NoError(t, v.Err())
}

// TestVoice_Silent verifies a zero-amplitude wave streams silence.
func TestVoice_Silent(t *testing.T) {
	v, err := tone.New(sampleRate, 220, sinewave.New(sinewave.WithAmplitudeRatio(0)))
	require.NoError(t, err)

	samples := make([][2]float64, 32)
	v.Stream(samples)
	for _, s := range samples {
		assert.Equal(t, 0.0, math.Abs(s[0]))
	}
}

// TestTap_Snapshot verifies the ring keeps the most recent samples in order.
func TestTap_Snapshot(t *testing.T) {
	var next float64
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			next++
			samples[i] = [2]float64{next, next}
		}
		return len(samples), true
	})
	tap := tone.NewTap(src, 4)

	tap.Stream(make([][2]float64, 3))
	assert.Equal(t, []float64{2, 3}, tap.Snapshot(2))

	tap.Stream(make([][2]float64, 3))
	assert.Equal(t, []float64{3, 4, 5, 6}, tap.Snapshot(10))
	assert.Nil(t, tap.Snapshot(0))
	assert.NoError(t, tap.Err())
}
