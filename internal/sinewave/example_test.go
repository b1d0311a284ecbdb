package sinewave_test

import (
	"fmt"

	"github.com/iburimskiy/sinewave-shape/internal/sinewave"
)

// ExampleSample traces a full-amplitude wave across a small rectangle.
func ExampleSample() {
	w := sinewave.New(sinewave.WithAmplitudeRatio(1), sinewave.WithFrequency(1))
	path := sinewave.Sample(w, sinewave.Rect{Width: 4, Height: 2}, sinewave.DefaultStep)

	for _, p := range path {
		fmt.Printf("(%.0f, %.2f)\n", p.X, p.Y)
	}
	// Output:
	// (0, 1.00)
	// (1, 2.00)
	// (2, 1.00)
	// (3, 0.00)
	// (4, 1.00)
}

// ExampleInterpolate morphs a flat wave into an edge-modulated one.
func ExampleInterpolate() {
	from := sinewave.New(sinewave.WithAmplitudeRatio(0))
	to := sinewave.New(
		sinewave.WithAmplitudeRatio(0.8),
		sinewave.WithFrequency(5),
		sinewave.WithModulation(sinewave.ModulationEdges),
	)

	for _, p := range []float64{0, 0.5, 1} {
		w := sinewave.Interpolate(from, to, p)
		fmt.Printf("p=%.1f amplitude=%.2f frequency=%.1f modulation=%s\n",
			p, w.AmplitudeRatio(), w.Frequency(), w.Modulation())
	}
	// Output:
	// p=0.0 amplitude=0.00 frequency=1.0 modulation=none
	// p=0.5 amplitude=0.40 frequency=3.0 modulation=none
	// p=1.0 amplitude=0.80 frequency=5.0 modulation=edges
}
