package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/sinewave-shape/internal/animation"
	"github.com/iburimskiy/sinewave-shape/internal/config"
	"github.com/iburimskiy/sinewave-shape/internal/control"
	"github.com/iburimskiy/sinewave-shape/internal/sinewave"
	"github.com/iburimskiy/sinewave-shape/internal/theme"
)

// pointer is one frame of mouse and arrow-key state, collected by the game.
type pointer struct {
	x, y    float64
	pressed bool
	left    bool
	right   bool
}

// scene is one screen of the demo.
type scene interface {
	Title() string
	Update(in pointer, dt time.Duration)
	Draw(screen *ebiten.Image, stroke color.RGBA)
	// Wave is what the tone preview plays while the scene is shown.
	Wave() sinewave.Wave
}

var waveRect = sinewave.Rect{
	X:      config.WaveX,
	Y:      config.WaveY,
	Width:  config.WaveWidth,
	Height: config.WaveHeight,
}

func newSlider(label string, lo, hi, value float64, row int) *control.Slider {
	s := control.NewSlider(label, lo, hi, value)
	s.X = config.SliderX
	s.Y = float64(config.SliderY + row*config.SliderSpacing)
	s.Width = config.SliderWidth
	s.Height = config.SliderHeight
	return s
}

// sliderScene drives a stack of accent waves from three sliders. Amplitude
// and frequency changes animate with one timing, phase changes with another.
// Two thin bands above and below the stack wave on their own.
type sliderScene struct {
	amplitude *control.Slider
	frequency *control.Slider
	phase     *control.Slider

	shape *animation.Transition // amplitude and frequency
	shift *animation.Transition // phase
	band  *animation.Transition
}

func newSliderScene() *sliderScene {
	s := &sliderScene{
		amplitude: newSlider("Amplitude", 0, 1, 0.5, 0),
		frequency: newSlider("Frequency", config.FrequencyMin, config.FrequencyMax, config.FrequencyMin, 1),
		phase:     newSlider("Phase", config.PhaseMin, config.PhaseMax, 0, 2),
		band: &animation.Transition{
			From:     sinewave.New(sinewave.WithAmplitudeRatio(config.BandAmplitude), sinewave.WithFrequency(config.BandFrequency)),
			To:       sinewave.New(sinewave.WithAmplitudeRatio(config.BandAmplitude), sinewave.WithFrequency(config.BandFrequency), sinewave.WithPhase(-2*math.Pi)),
			Duration: config.WaveAnimation,
			Easing:   animation.Linear,
			Repeat:   true,
		},
	}
	target := s.target()
	s.shape = animation.NewTransition(target, target, config.AmplitudeChange, animation.EaseOut)
	s.shift = animation.NewTransition(target, target, config.PhaseShift, animation.EaseOut)
	return s
}

func (s *sliderScene) Title() string { return "Sine Wave Lines" }

func (s *sliderScene) target() sinewave.Wave {
	return sinewave.New(
		sinewave.WithAmplitudeRatio(s.amplitude.Value()),
		sinewave.WithFrequency(s.frequency.Value()),
		sinewave.WithPhase(s.phase.Value()),
	)
}

// rects returns the top band, the stack and the bottom band areas.
func (s *sliderScene) rects() (top, stack, bottom sinewave.Rect) {
	top = waveRect
	top.Height = config.BandHeight

	stack = waveRect
	stack.Y += config.BandHeight + config.BandGap
	stack.Height -= 2 * (config.BandHeight + config.BandGap)

	bottom = top
	bottom.Y = stack.MaxY() + config.BandGap
	return top, stack, bottom
}

func (s *sliderScene) Update(in pointer, dt time.Duration) {
	shaped := s.amplitude.Drag(in.x, in.y, in.pressed)
	if s.frequency.Drag(in.x, in.y, in.pressed) {
		shaped = true
	}
	shifted := s.phase.Drag(in.x, in.y, in.pressed)

	if shaped {
		s.shape.Retarget(s.target())
	}
	if shifted {
		s.shift.Retarget(s.target())
	}
	s.shape.Advance(dt)
	s.shift.Advance(dt)
	s.band.Advance(dt)
}

// stack returns the layered waves, back to front. Wave k is offset by
// k·StackPhaseOffset radians.
func (s *sliderScene) stack() []sinewave.Wave {
	base := s.Wave()
	out := make([]sinewave.Wave, config.StackWaveCount)
	for k := range out {
		w := base
		w.SetPhase(base.Phase() + float64(k)*config.StackPhaseOffset)
		out[k] = w
	}
	return out
}

func (s *sliderScene) Wave() sinewave.Wave {
	w := s.shape.Current()
	w.SetPhase(s.shift.Current().Phase())
	return w
}

func (s *sliderScene) Draw(screen *ebiten.Image, stroke color.RGBA) {
	top, stack, bottom := s.rects()
	bandColor := theme.RGBA(theme.Primary, 1)
	drawWave(screen, s.band.Current(), top, bandColor, config.BandLineWidth, nil)
	for k, w := range s.stack() {
		opacity := float64(k) / float64(config.StackWaveCount)
		drawWave(screen, w, stack, theme.Fade(stroke, opacity), config.StackLineWidth, nil)
	}
	drawWave(screen, s.band.Current(), bottom, bandColor, config.BandLineWidth, nil)

	drawSlider(screen, s.amplitude, fmt.Sprintf("%.2f", s.amplitude.Value()))
	drawSlider(screen, s.frequency, fmt.Sprintf("%.1f", s.frequency.Value()))
	drawSlider(screen, s.phase, formatRadians(s.phase.Value()))
}

// modulationScene shows the three amplitude envelopes. Arrow keys switch
// the envelope; the amplitude follows its slider through a spring.
type modulationScene struct {
	amplitude *control.Slider
	frequency *control.Slider
	mode      *control.Selector[sinewave.Modulation]

	spring *animation.Follower
	morph  *animation.Transition
	slide  *animation.Transition
}

func newModulationScene() *modulationScene {
	s := &modulationScene{
		amplitude: newSlider("Amplitude", 0, 1, 0.5, 0),
		frequency: newSlider("Frequency", config.FrequencyMin, config.FrequencyMax, (config.FrequencyMin+config.FrequencyMax)/2, 1),
		mode: control.NewSelector(sinewave.ModulationCenter,
			sinewave.ModulationEdges, sinewave.ModulationCenter, sinewave.ModulationNone),
		spring: animation.NewFollower(config.FPS, config.SpringFrequency, config.SpringDamping, 0.5),
		slide: &animation.Transition{
			From:     sinewave.New(sinewave.WithPhase(0)),
			To:       sinewave.New(sinewave.WithPhase(2 * math.Pi)),
			Duration: config.ModulationWaveSlide,
			Easing:   animation.Linear,
			Repeat:   true,
		},
	}
	target := s.target()
	s.morph = animation.NewTransition(target, target, config.AmplitudeChange, animation.EaseOut)
	return s
}

func (s *modulationScene) Title() string { return "Amplitude Modulation" }

func (s *modulationScene) target() sinewave.Wave {
	return sinewave.New(
		sinewave.WithAmplitudeRatio(s.amplitude.Value()),
		sinewave.WithFrequency(s.frequency.Value()),
		sinewave.WithModulation(s.mode.Current()),
	)
}

func (s *modulationScene) Update(in pointer, dt time.Duration) {
	changed := s.frequency.Drag(in.x, in.y, in.pressed)
	s.amplitude.Drag(in.x, in.y, in.pressed)
	if in.left {
		s.mode.Prev()
		changed = true
	}
	if in.right {
		s.mode.Next()
		changed = true
	}
	if changed {
		s.morph.Retarget(s.target())
	}
	s.spring.Step(s.amplitude.Value())
	s.morph.Advance(dt)
	s.slide.Advance(dt)
}

func (s *modulationScene) Wave() sinewave.Wave {
	w := s.morph.Current()
	w.SetAmplitudeRatio(s.spring.Value())
	w.SetPhase(s.slide.Current().Phase())
	return w
}

func (s *modulationScene) Draw(screen *ebiten.Image, stroke color.RGBA) {
	w := s.Wave()
	drawEnvelope(screen, w, waveRect)
	drawWave(screen, w, waveRect, stroke, config.LineWidth, nil)
	drawSlider(screen, s.amplitude, fmt.Sprintf("%.2f", s.amplitude.Value()))
	drawSlider(screen, s.frequency, fmt.Sprintf("%.1f", s.frequency.Value()))

	label := fmt.Sprintf("Modulation: < %s >  (Left/Right)", s.mode.Current())
	ebitenutil.DebugPrintAt(screen, label, config.SliderX, config.SliderY+2*config.SliderSpacing)
}

// overlapScene stacks several waves of increasing frequency. One eased
// clock swings their phases apart and back while an angle a drives the
// shared amplitude sin(a)·1.5 + 0.2, saturating for most of the swing.
type overlapScene struct {
	drift *animation.Transition
}

func newOverlapScene() *overlapScene {
	return &overlapScene{
		drift: &animation.Transition{
			From:        sinewave.New(sinewave.WithPhase(0)),
			To:          sinewave.New(sinewave.WithPhase(-2 * math.Pi)),
			Duration:    config.OverlapCycle,
			Easing:      animation.EaseInOut,
			Repeat:      true,
			AutoReverse: true,
		},
	}
}

func (s *overlapScene) Title() string { return "Overlapping Waves" }

func (s *overlapScene) Update(_ pointer, dt time.Duration) {
	s.drift.Advance(dt)
}

// overlapAmplitude maps the swing angle to the shared amplitude ratio. The
// setter clamps the result to 1.
func overlapAmplitude(angle float64) float64 {
	return math.Sin(angle)*1.5 + 0.2
}

// waves returns the stacked waves, lowest frequency first.
func (s *overlapScene) waves() []sinewave.Wave {
	phase := s.drift.Current().Phase()
	angle := s.drift.Eased() * math.Pi / 2
	out := make([]sinewave.Wave, config.OverlapWaveCount)
	for k := range out {
		out[k] = sinewave.New(
			sinewave.WithPhase(phase*float64(k)),
			sinewave.WithAmplitudeRatio(overlapAmplitude(angle)),
			sinewave.WithFrequency(float64(k+1)),
		)
	}
	return out
}

func (s *overlapScene) Wave() sinewave.Wave {
	return sinewave.New(
		sinewave.WithPhase(s.drift.Current().Phase()),
		sinewave.WithAmplitudeRatio(overlapAmplitude(s.drift.Eased()*math.Pi/2)),
		sinewave.WithFrequency(config.OverlapFrequency),
	)
}

func (s *overlapScene) Draw(screen *ebiten.Image, stroke color.RGBA) {
	for k, w := range s.waves() {
		c := theme.WaveColor(k, config.WaveAlpha)
		if k == 0 {
			c = theme.Fade(stroke, config.WaveAlpha)
		}
		drawWave(screen, w, waveRect, c, config.LineWidth, theme.MaskAlpha)
	}
}
