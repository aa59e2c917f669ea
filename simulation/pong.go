package simulation

import (
	"github.com/vlachapelle/spikepaddle/agentrand"
	"github.com/vlachapelle/spikepaddle/agenterr"
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
	"github.com/vlachapelle/spikepaddle/network"
	"github.com/vlachapelle/spikepaddle/translator"
)

// Pong simulates the full two-paddle environment: the ball bounces
// between an opposing paddle (driven by any controller) and the agent's
// paddle, and
// scores a reward or punishment off either wall (spec.md §4.10).
type Pong struct {
	*Simulation

	Ball    *elements.Ball
	Paddle  *elements.Paddle
	Agent   *elements.Paddle
	Network *network.Network

	translator *translator.SignalTranslator

	ballGenerationArea *geometry.Rectangle
	ballReferenceSpeed float64
	minOrientation     float64
	maxOrientation     float64

	tick           int
	successHistory []Outcome
}

// NewPong constructs a Pong simulation. ballGenerationArea is the
// rectangle the ball is uniformly repositioned within on regeneration;
// minOrientation/maxOrientation bound the regenerated speed's direction,
// in degrees (spec.md §4.10, e.g. 120-240 aims the ball at the agent).
func NewPong(height, width, frequency float64, ball *elements.Ball, opposing, agent *elements.Paddle, net *network.Network, ballGenerationArea *geometry.Rectangle, sensorTranslator *translator.SignalTranslator, minOrientation, maxOrientation float64, rng agentrand.Source) (*Pong, error) {
	if !(minOrientation < maxOrientation) {
		return nil, agenterr.Newf(agenterr.OutOfBounds, "ball orientation minimum (%v) must be less than its maximum (%v)", minOrientation, maxOrientation)
	}

	p := &Pong{
		Network:            net,
		Ball:               ball,
		Paddle:             opposing,
		Agent:              agent,
		translator:         sensorTranslator,
		ballGenerationArea: ballGenerationArea,
		ballReferenceSpeed: ball.Speed.Norm(),
		minOrientation:     minOrientation,
		maxOrientation:     maxOrientation,
	}
	p.Simulation = NewSimulation(height, width, frequency, []Body{ballBody(ball), paddleBody(opposing), paddleBody(agent)}, rng)
	return p, nil
}

// Step advances the simulation one tick: move elements, resolve ball
// collisions, then drive the network's perception-action-learning loop.
func (p *Pong) Step() error {
	if err := p.step(); err != nil {
		return err
	}
	p.tick++
	if err := p.checkBallCollisions(); err != nil {
		return err
	}

	signal := p.translator.GenerateSensorySignal()
	if err := p.Network.PropagateSignal(p.RNG(), signal); err != nil {
		return err
	}
	p.Network.OptimizeConnections()
	p.Network.ComputeFreeEnergy()
	return nil
}

func (p *Pong) checkBallCollisions() error {
	center := p.Ball.Shape.Center()
	radius := p.Ball.Shape.Radius

	switch {
	case center.Y <= radius || p.Height-center.Y <= radius:
		reflected := p.Ball.Speed.Reflection(geometry.Vector2D{Y: 1.0})
		return p.Ball.SetState(nil, &reflected, nil)

	case center.X <= radius:
		if err := p.Network.Punish(p.RNG()); err != nil {
			return err
		}
		p.successHistory = append(p.successHistory, Outcome{Caught: false, Tick: p.tick})
		p.regenerateBall()
		p.translator.ResetTimer()
		return nil

	case p.Width-center.X <= radius:
		if err := p.Network.Reward(p.RNG()); err != nil {
			return err
		}
		p.successHistory = append(p.successHistory, Outcome{Caught: true, Tick: p.tick})
		p.regenerateBall()
		p.translator.ResetTimer()
		return nil

	case p.Ball.CollidesWith(p.Paddle.Element):
		return resolvePongPaddleCollision(p.Ball, p.Paddle)

	case p.Ball.CollidesWith(p.Agent.Element):
		if err := resolvePongPaddleCollision(p.Ball, p.Agent); err != nil {
			return err
		}
		if err := p.Network.Reward(p.RNG()); err != nil {
			return err
		}
		p.successHistory = append(p.successHistory, Outcome{Caught: true, Tick: p.tick})
		return nil
	}
	return nil
}

func (p *Pong) regenerateBall() {
	position := p.randomPointInGenerationArea()
	orientation := p.minOrientation + p.RNG().Uniform()*(p.maxOrientation-p.minOrientation)
	speed := geometry.Vector2D{X: p.ballReferenceSpeed, Y: 0.0}.Rotate(orientation)
	_ = p.Ball.SetState(&position, &speed, nil)
}

func (p *Pong) randomPointInGenerationArea() geometry.Vector2D {
	area := p.ballGenerationArea
	local := geometry.Vector2D{
		X: (p.RNG().Uniform()-0.5)*area.Width,
		Y: (p.RNG().Uniform()-0.5)*area.Height,
	}
	return area.ToGlobal(local)
}

// SuccessHistory returns the recorded sequence of rally outcomes (a
// right-wall or agent-paddle hit counts as caught).
func (p *Pong) SuccessHistory() []Outcome { return p.successHistory }
