package simulation

import (
	"math"

	"github.com/vlachapelle/spikepaddle/agentrand"
	"github.com/vlachapelle/spikepaddle/agenterr"
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
	"github.com/vlachapelle/spikepaddle/network"
	"github.com/vlachapelle/spikepaddle/translator"
)

// Outcome records one catch attempt: whether the ball was caught, and
// the tick on which the attempt ended.
type Outcome struct {
	Caught bool
	Tick   int
}

// Catch simulates the simplified single-paddle variant: the ball always
// flies on the same fixed trajectory toward the agent, which must catch
// it on its front face (spec.md §4.11).
type Catch struct {
	*Simulation

	Ball    *elements.Ball
	Agent   *elements.Paddle
	Network *network.Network

	translator *translator.SignalTranslator

	ballInitialPosition geometry.Vector2D
	ballReferenceSpeed  geometry.Vector2D
	agentInitialY       float64

	tick           int
	successHistory []Outcome
}

// NewCatch constructs a Catch simulation. ballReferenceXSpeed is the
// ball's horizontal speed magnitude toward the agent; orientationDegrees
// must lie strictly within (100, 260) (spec.md §4.11's fixed-trajectory
// constraint, carried from the original's constructor validation).
func NewCatch(height, width, frequency float64, ball *elements.Ball, agent *elements.Paddle, net *network.Network, ballInitialPosition geometry.Vector2D, ballReferenceXSpeed, orientationDegrees float64, sensorTranslator *translator.SignalTranslator, rng agentrand.Source) (*Catch, error) {
	if !(100.0 < orientationDegrees && orientationDegrees < 260.0) {
		return nil, agenterr.Newf(agenterr.OutOfBounds, "ball reference orientation (%v) must be strictly between 100 and 260 degrees", orientationDegrees)
	}

	c := &Catch{
		Network:             net,
		Ball:                ball,
		Agent:               agent,
		translator:          sensorTranslator,
		ballInitialPosition: ballInitialPosition,
		agentInitialY:       agent.Position().Y,
		ballReferenceSpeed: geometry.Vector2D{
			X: -ballReferenceXSpeed,
			Y: -ballReferenceXSpeed * math.Tan(orientationDegrees*math.Pi/180.0),
		},
	}
	c.Simulation = NewSimulation(height, width, frequency, []Body{ballBody(ball), paddleBody(agent)}, rng)

	if err := ball.SetState(&ballInitialPosition, &c.ballReferenceSpeed, nil); err != nil {
		return nil, err
	}
	return c, nil
}

// Step advances the simulation one tick: move elements, resolve ball
// collisions, then drive the network's perception-action-learning loop.
func (c *Catch) Step() error {
	if err := c.step(); err != nil {
		return err
	}
	c.tick++
	if err := c.checkBallCollisions(); err != nil {
		return err
	}

	signal := c.translator.GenerateSensorySignal()
	if err := c.Network.PropagateSignal(c.RNG(), signal); err != nil {
		return err
	}
	c.Network.OptimizeConnections()
	c.Network.ComputeFreeEnergy()
	return nil
}

func (c *Catch) checkBallCollisions() error {
	center := c.Ball.Shape.Center()
	radius := c.Ball.Shape.Radius

	switch {
	case center.Y <= radius || c.Height-center.Y <= radius:
		reflected := c.Ball.Speed.Reflection(geometry.Vector2D{Y: 1.0})
		return c.Ball.SetState(nil, &reflected, nil)

	case center.X <= radius:
		if err := c.Network.Punish(c.RNG()); err != nil {
			return err
		}
		c.successHistory = append(c.successHistory, Outcome{Caught: false, Tick: c.tick})
		c.resetAgentPosition()
		c.regenerateBall()
		c.translator.ResetTimer()
		return nil

	case c.Width-center.X <= radius:
		return agenterr.Newf(agenterr.OutOfBounds, "ball reached the right wall, which should never happen in Catch")

	case c.Ball.CollidesWith(c.Agent.Element):
		return c.resolveAgentCollision()
	}
	return nil
}

func (c *Catch) resolveAgentCollision() error {
	caught, err := resolveCatchAgentCollision(c.Ball, c.Agent)
	if err != nil {
		return err
	}
	if !caught {
		return nil
	}
	if err := c.Network.Reward(c.RNG()); err != nil {
		return err
	}
	c.successHistory = append(c.successHistory, Outcome{Caught: true, Tick: c.tick})
	c.resetAgentPosition()
	c.regenerateBall()
	c.translator.ResetTimer()
	return nil
}

func (c *Catch) resetAgentPosition() {
	pos := geometry.Vector2D{X: c.Agent.Position().X, Y: c.agentInitialY}
	_ = c.Agent.SetState(&pos, nil, nil)
}

func (c *Catch) regenerateBall() {
	_ = c.Ball.SetState(&c.ballInitialPosition, &c.ballReferenceSpeed, nil)
}

// SuccessHistory returns the recorded sequence of catch attempts.
func (c *Catch) SuccessHistory() []Outcome { return c.successHistory }

// AverageSuccessRate returns the fraction of recorded attempts that were
// caught.
func (c *Catch) AverageSuccessRate() float64 {
	if len(c.successHistory) == 0 {
		return 0
	}
	caught := 0
	for _, o := range c.successHistory {
		if o.Caught {
			caught++
		}
	}
	return float64(caught) / float64(len(c.successHistory))
}
