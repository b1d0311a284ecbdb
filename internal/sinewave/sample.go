package sinewave

import "math"

// DefaultStep is the sampling interval along the x axis: one point per unit
// of rectangle width.
const DefaultStep = 1.0

// MaxPoints caps the number of points a single Sample call may produce.
// Inputs that would exceed it yield an empty path.
const MaxPoints = 1 << 24

// Point is a position in the rectangle's coordinate space.
type Point struct {
	X, Y float64
}

// Path is an ordered sequence of points running from the left edge of the
// rectangle to the right edge. Consecutive points are joined by straight
// segments.
type Path []Point

// Rect is the bounding rectangle a wave is drawn into.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// MinX, MaxX, MidX, MinY, MaxY and MidY return the rectangle's edges and
// center lines.
func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.Height }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

func (r Rect) finite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height)
}

// Sample traces w across rect, emitting a point every step units from MinX
// to MaxX inclusive. A rect of width W yields floor(W/step)+1 points.
//
// A non-positive width, any non-finite parameter or rect field, or a
// width/step ratio needing more than MaxPoints points yields an empty path.
// A non-positive or non-finite step falls back to DefaultStep.
func Sample(w Wave, rect Rect, step float64) Path {
	if !w.finite() || !rect.finite() || rect.Width <= 0 {
		return Path{}
	}
	if !(step > 0) || math.IsInf(step, 1) {
		step = DefaultStep
	}

	count := math.Floor(rect.Width / step)
	if count >= MaxPoints {
		return Path{}
	}

	wl := wavelength(w, rect)
	n := int(count) + 1
	path := make(Path, 0, n)
	for i := 0; i < n; i++ {
		// Multiply instead of accumulating so the last sample lands on MaxX.
		x := rect.MinX() + float64(i)*step
		path = append(path, wavePoint(w, rect, wl, x))
	}
	return path
}

// PointAt evaluates the wave at a single x coordinate. ok is false in the
// same situations where Sample would return an empty path.
func PointAt(w Wave, rect Rect, x float64) (p Point, ok bool) {
	if !w.finite() || !rect.finite() || rect.Width <= 0 || !isFinite(x) {
		return Point{}, false
	}
	return wavePoint(w, rect, wavelength(w, rect), x), true
}

// Envelope returns the amplitude weight of mode at x. The weight is computed
// from x's offset to the horizontal center, normalized to [-1, 1] across rect.
func Envelope(mode Modulation, x float64, rect Rect) float64 {
	switch mode {
	case ModulationCenter:
		return math.Abs(normalizedOffset(x, rect))
	case ModulationEdges:
		o := normalizedOffset(x, rect)
		return 1 - o*o
	default:
		return 1
	}
}

// wavelength is the distance along x covering one radian of the curve.
func wavelength(w Wave, rect Rect) float64 {
	angularFrequency := 2 * math.Pi * w.Frequency()
	return rect.Width / angularFrequency
}

func wavePoint(w Wave, rect Rect, wl, x float64) Point {
	sine := math.Sin(x/wl + w.phase)
	midHeight := rect.Height / 2
	maxAmplitudeHeight := midHeight * w.amplitudeRatio
	weight := Envelope(w.modulation, x, rect)

	y := sine*maxAmplitudeHeight*weight + midHeight + rect.MinY()
	return Point{X: x, Y: y}
}

func normalizedOffset(x float64, rect Rect) float64 {
	half := rect.Width / 2
	if half <= 0 {
		return 0
	}
	return (x - rect.MidX()) / half
}
