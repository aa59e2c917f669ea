package controllers

import (
	"testing"

	"github.com/vlachapelle/spikepaddle/agenterr"
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
)

type fakeMotorSource struct {
	values map[string]float64
}

func (f *fakeMotorSource) MotorSignal(names []string) ([]float64, error) {
	out := make([]float64, len(names))
	var faulty []string
	for i, name := range names {
		v, ok := f.values[name]
		if !ok {
			faulty = append(faulty, name)
			continue
		}
		out[i] = v
	}
	if len(faulty) > 0 {
		return nil, agenterr.Newf(agenterr.NetworkCommunicationError, "unknown region(s)").WithFaultyNames(faulty...)
	}
	return out, nil
}

func TestConstantSpeedNetworkControllerMovesOnThreshold(t *testing.T) {
	source := &fakeMotorSource{values: map[string]float64{"fwd": 0.9, "bwd": 0.1}}
	ctrl, err := NewConstantSpeedNetworkController(source, "fwd", "bwd", geometry.Vector2D{Y: 1}, 0.5)
	if err != nil {
		t.Fatalf("NewConstantSpeedNetworkController: %v", err)
	}
	shape := geometry.NewRectangle(geometry.Vector2D{}, 1, 1, 0)
	paddle, err := elements.NewPaddle(shape, ctrl, -100, 100)
	if err != nil {
		t.Fatalf("NewPaddle: %v", err)
	}

	if err := ctrl.Update(paddle); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if paddle.Position().Y != 1 {
		t.Errorf("Position().Y = %v, want 1", paddle.Position().Y)
	}
}

func TestConstantSpeedNetworkControllerFailsOnUnknownRegion(t *testing.T) {
	source := &fakeMotorSource{values: map[string]float64{"fwd": 0.0}}
	if _, err := NewConstantSpeedNetworkController(source, "fwd", "missing", geometry.Vector2D{Y: 1}, 0.5); err == nil {
		t.Fatal("expected ControllerInitializationError for a missing motor region")
	}
}

func TestLinearRandomWalkerAlwaysPicksOneOfThreeMoves(t *testing.T) {
	walker := NewLinearRandomWalker(geometry.Vector2D{Y: 1}, [3]float64{0.3, 0.4, 0.3})
	walker.SetRNG(&stubRNG{value: 0.9})

	shape := geometry.NewRectangle(geometry.Vector2D{}, 1, 1, 0)
	paddle, err := elements.NewPaddle(shape, walker, -100, 100)
	if err != nil {
		t.Fatalf("NewPaddle: %v", err)
	}
	if err := walker.Update(paddle); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if paddle.Position().Y != -1 {
		t.Errorf("Position().Y = %v, want -1 (u=0.9 should fall in the 'down' bucket)", paddle.Position().Y)
	}
}

type stubRNG struct{ value float64 }

func (s *stubRNG) Uniform() float64                  { return s.value }
func (s *stubRNG) IntRange(low, high int) int        { return low }
func (s *stubRNG) Shuffle(n int, swap func(i, j int)) {}
func (s *stubRNG) Choice(n, k int) []int              { return nil }
