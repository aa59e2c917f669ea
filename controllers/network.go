package controllers

import (
	"gonum.org/v1/gonum/mat"

	"github.com/vlachapelle/spikepaddle/agenterr"
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
	"github.com/vlachapelle/spikepaddle/network"
)

// MotorSource is the minimal network surface a NetworkController needs:
// the averaged recent firing of a set of named regions.
type MotorSource interface {
	MotorSignal(regionNames []string) ([]float64, error)
}

// ConstantSpeedNetworkController moves a paddle vertically by a fixed
// speed whenever the network's averaged firing in a forward or backward
// motor region crosses a threshold. Both may fire in the same tick,
// producing net zero motion.
type ConstantSpeedNetworkController struct {
	source          MotorSource
	forwardRegion   string
	backwardRegion  string
	referenceSpeed  geometry.Vector2D
	signalThreshold float64
}

// NewConstantSpeedNetworkController validates that both named motor
// regions exist in source before returning the controller.
func NewConstantSpeedNetworkController(source MotorSource, forwardRegion, backwardRegion string, referenceSpeed geometry.Vector2D, signalThreshold float64) (*ConstantSpeedNetworkController, error) {
	if _, err := source.MotorSignal([]string{forwardRegion, backwardRegion}); err != nil {
		if ae, ok := err.(*agenterr.Error); ok {
			return nil, agenterr.Newf(agenterr.ControllerInitializationError, "accessed region(s) %v do not exist in the given network", ae.FaultyNames)
		}
		return nil, agenterr.Wrap(agenterr.ControllerInitializationError, "failed validating motor regions", err)
	}
	return &ConstantSpeedNetworkController{
		source:          source,
		forwardRegion:   forwardRegion,
		backwardRegion:  backwardRegion,
		referenceSpeed:  referenceSpeed,
		signalThreshold: signalThreshold,
	}, nil
}

// Update reads the forward/backward motor signal into a small dense
// vector and moves the paddle's center by ReferenceSpeed (or its
// negation) for every region whose signal crosses the threshold.
func (c *ConstantSpeedNetworkController) Update(paddle *elements.Paddle) error {
	signal, err := c.source.MotorSignal([]string{c.forwardRegion, c.backwardRegion})
	if err != nil {
		return err
	}
	vec := mat.NewVecDense(2, signal)

	if vec.AtVec(0) >= c.signalThreshold {
		paddle.Shape.MoveCenter(c.referenceSpeed)
	}
	if vec.AtVec(1) >= c.signalThreshold {
		paddle.Shape.MoveCenter(c.referenceSpeed.Neg())
	}
	return nil
}

var _ MotorSource = (*network.Network)(nil)
