package control_test

import (
	"testing"

	"github.com/iburimskiy/sinewave-shape/internal/control"
	"github.com/stretchr/testify/assert"
)

func frequencySlider() *control.Slider {
	s := control.NewSlider("Frequency", 1, 30, 1)
	s.X, s.Y, s.Width, s.Height = 100, 400, 290, 20
	return s
}

// TestSlider_SetClamps verifies values stay within the range.
func TestSlider_SetClamps(t *testing.T) {
	s := frequencySlider()

	s.Set(-4)
	assert.Equal(t, 1.0, s.Value())
	s.Set(99)
	assert.Equal(t, 30.0, s.Value())
	s.Set(12)
	assert.Equal(t, 12.0, s.Value())
}

// TestSlider_ValueAtRoundTrip checks KnobX and ValueAt are inverses.
func TestSlider_ValueAtRoundTrip(t *testing.T) {
	s := frequencySlider()
	for _, v := range []float64{1, 7.25, 15.5, 30} {
		s.Set(v)
		assert.InDelta(t, v, s.ValueAt(s.KnobX()), 1e-9)
	}
	assert.Equal(t, 1.0, s.ValueAt(0), "left of the track clamps to Min")
	assert.Equal(t, 30.0, s.ValueAt(10_000), "right of the track clamps to Max")
}

// TestSlider_Drag follows a press, drag off the track, and release.
func TestSlider_Drag(t *testing.T) {
	s := frequencySlider()

	assert.False(t, s.Drag(245, 100, true), "press outside the track is ignored")
	assert.False(t, s.Dragging())
	s.Drag(245, 100, false)

	assert.True(t, s.Drag(245, 410, true))
	assert.InDelta(t, 15.5, s.Value(), 1e-9)
	assert.True(t, s.Dragging())

	assert.True(t, s.Drag(390, 50, true), "drag keeps tracking off the track")
	assert.Equal(t, 30.0, s.Value())
	assert.False(t, s.Drag(500, 50, true), "no change past the end")

	assert.False(t, s.Drag(100, 410, false))
	assert.False(t, s.Dragging())
	assert.Equal(t, 30.0, s.Value(), "release does not move the knob")
}

// TestSlider_DragNeedsPressOnTrack verifies a press that began elsewhere does
// not grab the knob when the cursor later moves onto the track.
func TestSlider_DragNeedsPressOnTrack(t *testing.T) {
	s := frequencySlider()

	assert.False(t, s.Drag(50, 50, true), "press away from the track")
	assert.False(t, s.Drag(245, 410, true), "held button slides onto the track")
	assert.False(t, s.Dragging())
	assert.Equal(t, 1.0, s.Value())

	s.Drag(245, 410, false)
	assert.True(t, s.Drag(245, 410, true), "fresh press on the track starts a drag")
	assert.True(t, s.Dragging())
}

// TestSlider_DegenerateRange verifies a zero-width range reports fraction 0.
func TestSlider_DegenerateRange(t *testing.T) {
	s := control.NewSlider("Fixed", 2, 2, 5)
	assert.Equal(t, 2.0, s.Value())
	assert.Equal(t, 0.0, s.Fraction())
}

// TestSelector_Cycles checks wrapping in both directions.
func TestSelector_Cycles(t *testing.T) {
	s := control.NewSelector("center", "edges", "center", "none")
	assert.Equal(t, "center", s.Current())
	assert.Equal(t, 1, s.Index())

	assert.Equal(t, "none", s.Next())
	assert.Equal(t, "edges", s.Next())
	assert.Equal(t, "none", s.Prev())

	assert.False(t, s.Select("sideways"))
	assert.Equal(t, "none", s.Current())
}
