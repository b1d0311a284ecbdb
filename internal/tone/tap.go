package tone

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N mono samples into a ring
// buffer so the renderer can draw a scope of what is actually playing.
type Tap struct {
	Source    beep.Streamer
	buffer    []float64
	nextIndex int
	mu        sync.RWMutex
}

// NewTap returns a tap remembering ringSize samples of src.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 && len(t.buffer) > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = (samples[i][0] + samples[i][1]) * 0.5
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n samples, oldest first.
func (t *Tap) Snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	// nextIndex is the oldest slot once the ring has wrapped.
	start := t.nextIndex - n
	if start < 0 {
		start += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[(start+i)%len(t.buffer)]
	}
	return out
}
