package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Default spring parameters, close to a standard UI spring
const (
	DefaultFrequency = 7.0
	DefaultDamping   = 0.8

	settleEpsilon = 0.001
)

// Spring eases a displayed position toward a target, one frame at a time
type Spring struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
}

// NewSpring creates a spring stepped at fps frames per second and resting at start
func NewSpring(fps int, frequency, damping float64) *Spring {
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	if damping <= 0 {
		damping = DefaultDamping
	}
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Reset places the spring at rest on position
func (s *Spring) Reset(position float64) {
	s.position = position
	s.target = position
	s.velocity = 0
}

// SetTarget changes the equilibrium, keeping current position and velocity
func (s *Spring) SetTarget(target float64) {
	s.target = target
}

// Shift moves the displayed position by delta, keeping velocity and target.
// Used to hand a released drag over to the spring without a jump.
func (s *Spring) Shift(delta float64) {
	s.position += delta
}

// Target returns the equilibrium position
func (s *Spring) Target() float64 {
	return s.target
}

// Position returns the displayed position
func (s *Spring) Position() float64 {
	return s.position
}

// Update advances the spring by one frame and returns the new position
func (s *Spring) Update() float64 {
	if s.Settled() {
		return s.position
	}
	s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)
	if math.Abs(s.position-s.target) < settleEpsilon && math.Abs(s.velocity) < settleEpsilon {
		s.Reset(s.target)
	}
	return s.position
}

// Settled reports whether the spring rests on its target
func (s *Spring) Settled() bool {
	return s.position == s.target && s.velocity == 0
}
