package controllers

import (
	"github.com/vlachapelle/spikepaddle/agentrand"
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
)

// LinearRandomWalker is the control baseline: each tick it moves the
// paddle's center by +step, 0, or -step according to a probability
// triple, rather than reacting to any signal.
type LinearRandomWalker struct {
	Step          geometry.Vector2D
	Probabilities [3]float64 // up, stand still, down

	rng agentrand.Source
}

// NewLinearRandomWalker creates a walker with the given step and
// probability triple (must sum to 1, not enforced here — callers
// building from config are expected to normalize).
func NewLinearRandomWalker(step geometry.Vector2D, probabilities [3]float64) *LinearRandomWalker {
	return &LinearRandomWalker{Step: step, Probabilities: probabilities}
}

// SetRNG injects the shared simulation RNG stream; must be called before
// the first Update.
func (w *LinearRandomWalker) SetRNG(rng agentrand.Source) {
	w.rng = rng
}

// Update moves the paddle's center by +Step, 0, or -Step, drawn from the
// walker's probability triple.
func (w *LinearRandomWalker) Update(paddle *elements.Paddle) error {
	u := w.rng.Uniform()
	switch {
	case u < w.Probabilities[0]:
		paddle.Shape.MoveCenter(w.Step)
	case u < w.Probabilities[0]+w.Probabilities[1]:
		// stands still
	default:
		paddle.Shape.MoveCenter(w.Step.Neg())
	}
	return nil
}
