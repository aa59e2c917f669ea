package simulation

import (
	"testing"

	"github.com/vlachapelle/spikepaddle/agentrand"
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
)

func TestPongStepRunsWithoutError(t *testing.T) {
	net := buildTinyNetwork(t)
	rng := agentrand.New(7)

	ballShape := geometry.NewCircle(geometry.Vector2D{X: 50, Y: 50}, 5)
	ball, err := elements.NewBall(ballShape, geometry.Vector2D{X: 1, Y: 0}, geometry.Vector2D{}, 0.5, 5.0, true)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}

	opposingShape := geometry.NewRectangle(geometry.Vector2D{X: 90, Y: 50}, 2, 10, 0)
	opposing, err := elements.NewPaddle(opposingShape, noopController{}, 10, 90)
	if err != nil {
		t.Fatalf("NewPaddle(opposing): %v", err)
	}
	agentShape := geometry.NewRectangle(geometry.Vector2D{X: 10, Y: 50}, 2, 10, 0)
	agent, err := elements.NewPaddle(agentShape, noopController{}, 10, 90)
	if err != nil {
		t.Fatalf("NewPaddle(agent): %v", err)
	}

	tr := translatorForPong(ball)

	generationArea := geometry.NewRectangle(geometry.Vector2D{X: 50, Y: 50}, 20, 20, 0)
	pong, err := NewPong(100, 100, 12, ball, opposing, agent, net, generationArea, tr, 120.0, 240.0, rng)
	if err != nil {
		t.Fatalf("NewPong: %v", err)
	}

	for i := 0; i < 60; i++ {
		if err := pong.Step(); err != nil {
			t.Fatalf("Step() at tick %d: %v", i, err)
		}
	}
}

func TestNewPongRejectsInvertedOrientationRange(t *testing.T) {
	net := buildTinyNetwork(t)
	rng := agentrand.New(1)
	ballShape := geometry.NewCircle(geometry.Vector2D{X: 50, Y: 50}, 5)
	ball, _ := elements.NewBall(ballShape, geometry.Vector2D{}, geometry.Vector2D{}, 0.5, 5.0, false)
	opposingShape := geometry.NewRectangle(geometry.Vector2D{X: 90, Y: 50}, 2, 10, 0)
	opposing, _ := elements.NewPaddle(opposingShape, noopController{}, 10, 90)
	agentShape := geometry.NewRectangle(geometry.Vector2D{X: 10, Y: 50}, 2, 10, 0)
	agent, _ := elements.NewPaddle(agentShape, noopController{}, 10, 90)
	tr := translatorForPong(ball)
	generationArea := geometry.NewRectangle(geometry.Vector2D{X: 50, Y: 50}, 20, 20, 0)

	if _, err := NewPong(100, 100, 12, ball, opposing, agent, net, generationArea, tr, 240.0, 120.0, rng); err == nil {
		t.Fatal("expected OutOfBounds for an inverted orientation range")
	}
}
