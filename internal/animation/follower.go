package animation

import "github.com/charmbracelet/harmonica"

// Follower eases a scalar towards a moving target with a damped spring.
// It is stepped once per frame.
type Follower struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

// NewFollower creates a follower at start, stepped fps times per second.
// A damping ratio below 1 overshoots; 1 settles without overshoot.
func NewFollower(fps int, frequency, damping, start float64) *Follower {
	return &Follower{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		pos:    start,
	}
}

// Step advances one frame towards target and returns the new position.
func (f *Follower) Step(target float64) float64 {
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, target)
	return f.pos
}

// Value returns the current position.
func (f *Follower) Value() float64 { return f.pos }

// Reset jumps to v and stops all motion.
func (f *Follower) Reset(v float64) {
	f.pos = v
	f.vel = 0
}
