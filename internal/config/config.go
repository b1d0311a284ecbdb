package config

import (
	"math"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512
	FPS          = 60

	// Wave drawing area
	WaveX      = 40
	WaveY      = 90
	WaveWidth  = WindowWidth - 2*WaveX
	WaveHeight = 220
	LineWidth  = 4
	WaveAlpha  = 0.73

	// Slider scene: a stack of waves between two auto-waving bands
	StackWaveCount   = 5
	StackPhaseOffset = 10.0
	StackLineWidth   = 12
	BandHeight       = 24
	BandGap          = 8
	BandLineWidth    = 2
	BandAmplitude    = 0.5
	BandFrequency    = 30.0

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = WindowWidth - ButtonWidth - 20
	ButtonY      = 30

	// Sliders
	SliderX       = 160
	SliderY       = 345
	SliderWidth   = 360
	SliderHeight  = 16
	SliderSpacing = 36

	FrequencyMin = 1.0
	FrequencyMax = 30.0
	PhaseMin     = 0.0
	PhaseMax     = 2 * math.Pi

	// Overlapping waves scene
	OverlapWaveCount = 5
	OverlapFrequency = 6.0

	// Spring used to smooth slider-driven amplitude changes
	SpringFrequency = 8.0
	SpringDamping   = 0.7

	// Audio preview
	SampleRate   = 44100
	BasePitch    = 110.0
	ScopeSamples = 1024
	ScopeHeight  = 40
)

// Animation timings
const (
	WaveAnimation       = 300 * time.Millisecond
	ModulationWaveSlide = 400 * time.Millisecond
	AmplitudeChange     = 400 * time.Millisecond
	PhaseShift          = 700 * time.Millisecond
	OverlapCycle        = 900 * time.Millisecond
)
