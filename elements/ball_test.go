package elements

import (
	"math"
	"testing"

	"github.com/vlachapelle/spikepaddle/geometry"
)

func TestBallSpeedEnvelopeClampsAfterThreeUpdates(t *testing.T) {
	shape := geometry.NewCircle(geometry.Vector2D{}, 1.0)
	ball, err := NewBall(shape, geometry.Vector2D{X: 1, Y: 1}, geometry.Vector2D{X: -1, Y: 0}, 0, math.Sqrt2, true)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}

	for i := 0; i < 3; i++ {
		ball.Update()
	}

	wantX, wantY := -1.2649110640673518, 0.6324555320336759
	if math.Abs(ball.Speed.X-wantX) > 1e-9 || math.Abs(ball.Speed.Y-wantY) > 1e-9 {
		t.Errorf("speed = (%v, %v), want (%v, %v)", ball.Speed.X, ball.Speed.Y, wantX, wantY)
	}
}

func TestBallSetStateRejectsOutOfEnvelopeSpeed(t *testing.T) {
	shape := geometry.NewCircle(geometry.Vector2D{}, 1.0)
	ball, err := NewBall(shape, geometry.Vector2D{X: 1}, geometry.Vector2D{}, 0.5, 1.5, true)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	bad := geometry.Vector2D{X: 10}
	if err := ball.SetState(nil, &bad, nil); err == nil {
		t.Fatal("expected an error for an out-of-envelope speed")
	}
}

func TestNewBallRejectsInvertedEnvelope(t *testing.T) {
	shape := geometry.NewCircle(geometry.Vector2D{}, 1.0)
	if _, err := NewBall(shape, geometry.Vector2D{}, geometry.Vector2D{}, 2.0, 1.0, true); err == nil {
		t.Fatal("expected an error for an inverted speed envelope")
	}
}
