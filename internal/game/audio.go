package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/sinewave-shape/internal/config"
	"github.com/iburimskiy/sinewave-shape/internal/sinewave"
	"github.com/iburimskiy/sinewave-shape/internal/tone"
)

// audio is the tone preview chain: voice -> tap -> ctrl -> speaker.
type audio struct {
	voice *tone.Voice
	tap   *tone.Tap
	ctrl  *beep.Ctrl
}

// startAudio initializes the speaker and starts playing w, unpaused.
func startAudio(w sinewave.Wave) (*audio, error) {
	sr := beep.SampleRate(config.SampleRate)
	voice, err := tone.New(sr, config.BasePitch, w)
	if err != nil {
		return nil, err
	}
	t := tone.NewTap(voice, config.ScopeSamples*4)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(ctrl)
	fmt.Printf("Tone preview started at %d Hz\n", config.SampleRate)

	return &audio{voice: voice, tap: t, ctrl: ctrl}, nil
}

func (a *audio) paused() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return a.ctrl.Paused
}

func (a *audio) togglePause() {
	speaker.Lock()
	a.ctrl.Paused = !a.ctrl.Paused
	speaker.Unlock()
}

// toggleTone starts the preview on first use and pauses/resumes it after.
func (g *Game) toggleTone() error {
	if g.audio == nil {
		a, err := startAudio(g.current().Wave())
		if err != nil {
			return err
		}
		g.audio = a
		return nil
	}
	g.audio.togglePause()
	return nil
}

// syncTone feeds the visible wave to the voice.
func (g *Game) syncTone() error {
	if g.audio == nil {
		return nil
	}
	return g.audio.voice.SetWave(g.current().Wave())
}
