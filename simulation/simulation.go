// Package simulation drives the step loop that ties elements, the
// network, and the sensory translator together into Pong and Catch
// environments.
package simulation

import (
	"github.com/vlachapelle/spikepaddle/agentrand"
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
)

// Body adapts one simulated element (Ball or Paddle, whose concrete
// Update signatures differ) to the shape the base step loop needs.
// Pong/Catch build these from their own ball/paddle fields, since they
// need direct references to those fields for collision checks anyway.
type Body struct {
	Update   func() error
	Position func() geometry.Vector2D
}

// Simulation holds the state shared by every environment variant: frame
// geometry, the shared RNG stream, the elements updated each tick, and
// the recorded history of element centers.
type Simulation struct {
	Height    float64
	Width     float64
	Frequency float64

	elements   []Body
	rng        agentrand.Source
	envHistory [][]geometry.Vector2D
}

// NewSimulation constructs the shared base. elems is updated and
// recorded in the given order every tick, so that RNG draws remain
// reproducible (spec.md §5 ordering guarantees).
func NewSimulation(height, width, frequency float64, elems []Body, rng agentrand.Source) *Simulation {
	s := &Simulation{Height: height, Width: width, Frequency: frequency, elements: elems, rng: rng}
	s.envHistory = append(s.envHistory, s.centers())
	return s
}

// RNG returns the simulation's single shared random stream.
func (s *Simulation) RNG() agentrand.Source { return s.rng }

// EnvHistory returns the recorded per-tick element centers.
func (s *Simulation) EnvHistory() [][]geometry.Vector2D { return s.envHistory }

func (s *Simulation) centers() []geometry.Vector2D {
	centers := make([]geometry.Vector2D, len(s.elements))
	for i, e := range s.elements {
		centers[i] = e.Position()
	}
	return centers
}

// step updates every element and records the resulting centers. Variant
// simulations call this first in their own Step before running
// collision dispatch and the network loop.
func (s *Simulation) step() error {
	for _, e := range s.elements {
		if err := e.Update(); err != nil {
			return err
		}
	}
	s.envHistory = append(s.envHistory, s.centers())
	return nil
}

// ballBody wraps a *elements.Ball's Update (which never fails) into a Body.
func ballBody(b *elements.Ball) Body {
	return Body{
		Update:   func() error { b.Update(); return nil },
		Position: b.Position,
	}
}

// paddleBody wraps a *elements.Paddle into a Body.
func paddleBody(p *elements.Paddle) Body {
	return Body{Update: p.Update, Position: p.Position}
}
