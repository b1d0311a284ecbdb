package sinewave

// Interpolate blends a towards b for progress p.
//
// Phase, amplitude ratio and frequency are interpolated linearly; the result
// goes through the setters, so overshooting easings still produce a valid
// Wave. Phase is not wrapped: to animate across 2π the caller unwraps first.
//
// Modulation is discrete. It stays at a's mode for p < 1 and switches to b's
// mode once p reaches 1.
func Interpolate(a, b Wave, p float64) Wave {
	var out Wave
	out.SetPhase(lerp(a.phase, b.phase, p))
	out.SetAmplitudeRatio(lerp(a.amplitudeRatio, b.amplitudeRatio, p))
	out.SetFrequency(lerp(a.Frequency(), b.Frequency(), p))

	out.SetModulation(a.modulation)
	if p >= 1 {
		out.SetModulation(b.modulation)
	}
	return out
}

func lerp(a, b, p float64) float64 {
	// Exact endpoints: a + (b-a)*1 may differ from b in the last bit.
	switch p {
	case 0:
		return a
	case 1:
		return b
	}
	return a + (b-a)*p
}
