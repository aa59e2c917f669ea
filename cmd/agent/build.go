package main

import (
	"github.com/vlachapelle/spikepaddle/agentrand"
	"github.com/vlachapelle/spikepaddle/config"
	"github.com/vlachapelle/spikepaddle/controllers"
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
	"github.com/vlachapelle/spikepaddle/network"
	"github.com/vlachapelle/spikepaddle/simulation"
	"github.com/vlachapelle/spikepaddle/translator"
)

// Frame padding and paddle geometry, grounded on
// original_source/scripts/initialization.py's PAD_X/PAD_Y/paddle_width/paddle_height.
const (
	padX = 20.0
	padY = 10.0
)

func newAgentPaddle(sim config.SimulationConfig, net *network.Network, motorNames []string) (*elements.Paddle, error) {
	agentController, err := controllers.NewConstantSpeedNetworkController(
		net, motorNames[0], motorNames[1],
		geometry.Vector2D{X: 0, Y: sim.AgentSpeed},
		sim.ControllerThreshold,
	)
	if err != nil {
		return nil, err
	}
	yMin := padY + sim.PaddleHeight/2.0
	yMax := sim.Height - (padY + sim.PaddleHeight/2.0)
	shape := geometry.NewRectangle(
		geometry.Vector2D{X: padX + sim.PaddleWidth/2.0, Y: sim.Height / 2.0},
		sim.PaddleWidth, sim.PaddleHeight, 0.0,
	)
	return elements.NewPaddle(shape, agentController, yMin, yMax)
}

func newBall(sim config.SimulationConfig, center geometry.Vector2D) (*elements.Ball, error) {
	shape := geometry.NewCircle(center, sim.BallRadius)
	return elements.NewBall(shape, geometry.Vector2D{}, geometry.Vector2D{}, sim.BallSpeedMin, sim.BallSpeedMax, true)
}

func newTranslator(sim config.SimulationConfig, sensoryNames []string, position translator.BallPositionFunc) *translator.SignalTranslator {
	return translator.New(sensoryNames, sensoryRegionSize, sim.SensorMinFrequency, sim.SensorMaxFrequency, sim.Width, sim.Height, sim.Frequency, position)
}

// buildCatch wires a Catch environment: a fixed-trajectory ball aimed at
// the agent paddle from the far side of the frame (original_source's
// init_catch_simulation).
func buildCatch(cfg *config.Config, net *network.Network, sensoryNames, motorNames []string, rng agentrand.Source) (*simulation.Catch, error) {
	sim := cfg.Simulation

	ballInitialPosition := geometry.Vector2D{X: sim.Width * 0.75, Y: sim.Height / 2.0}
	ball, err := newBall(sim, ballInitialPosition)
	if err != nil {
		return nil, err
	}

	agent, err := newAgentPaddle(sim, net, motorNames)
	if err != nil {
		return nil, err
	}

	position := func() (float64, float64) {
		p := ball.Position()
		return p.X, p.Y
	}
	sensorTranslator := newTranslator(sim, sensoryNames, position)

	orientation := 150.0 + rng.Uniform()*60.0 // narrow slice of the (100,260) range away from the tan asymptotes
	referenceXSpeed := sim.BallSpeedMin * 1.5

	return simulation.NewCatch(sim.Height, sim.Width, sim.Frequency, ball, agent, net, ballInitialPosition, referenceXSpeed, orientation, sensorTranslator, rng)
}

// opponentKind selects the opposing paddle's control strategy in Pong.
type opponentKind int

const (
	opponentPID opponentKind = iota
	opponentRandomWalk
)

// buildPong wires a Pong environment: a PID- or random-walk-controlled
// opposing paddle, a network-controlled agent paddle, and a ball that
// regenerates aimed toward the agent's side (original_source's
// init_PID_pong_simulation / init_random_pong_simulation).
func buildPong(cfg *config.Config, net *network.Network, sensoryNames, motorNames []string, rng agentrand.Source, opponent opponentKind) (*simulation.Pong, error) {
	sim := cfg.Simulation

	ballAreaCenter := geometry.Vector2D{X: sim.Width / 2.0, Y: sim.Height / 2.0}
	ballSpeed := geometry.Vector2D{X: -(sim.BallSpeedMin + sim.BallSpeedMax) / 4.0, Y: (sim.BallSpeedMin + sim.BallSpeedMax) / 4.0}
	ball, err := newBall(sim, ballAreaCenter)
	if err != nil {
		return nil, err
	}
	if err := ball.SetState(nil, &ballSpeed, nil); err != nil {
		return nil, err
	}

	yMin := padY + sim.PaddleHeight/2.0
	yMax := sim.Height - (padY + sim.PaddleHeight/2.0)

	opposingShape := geometry.NewRectangle(
		geometry.Vector2D{X: sim.Width - (padX + sim.PaddleWidth/2.0), Y: sim.Height / 2.0},
		sim.PaddleWidth, sim.PaddleHeight, 180.0,
	)
	var opposingController elements.Controller
	switch opponent {
	case opponentRandomWalk:
		walker := controllers.NewLinearRandomWalker(geometry.Vector2D{X: 0, Y: sim.AgentSpeed}, [3]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
		walker.SetRNG(rng)
		opposingController = walker
	default:
		opposingController = controllers.NewPIDController(1.0, 0.0, 0.0, ball)
	}
	opposing, err := elements.NewPaddle(opposingShape, opposingController, yMin, yMax)
	if err != nil {
		return nil, err
	}

	agent, err := newAgentPaddle(sim, net, motorNames)
	if err != nil {
		return nil, err
	}

	position := func() (float64, float64) {
		p := ball.Position()
		return p.X, p.Y
	}
	sensorTranslator := newTranslator(sim, sensoryNames, position)

	ballGenerationArea := geometry.NewRectangle(ballAreaCenter, sim.Width/4.0, 3.0*sim.Height/4.0, 0.0)

	return simulation.NewPong(sim.Height, sim.Width, sim.Frequency, ball, opposing, agent, net, ballGenerationArea, sensorTranslator, 120.0, 240.0, rng)
}
