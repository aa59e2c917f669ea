// Package controllers implements the strategies that drive a paddle's
// motion each tick: a PID tracker, a network-signal thresholder, and a
// random-walk baseline.
package controllers

import (
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
)

// Positioned is the minimal surface a PIDController needs from the
// element it tracks.
type Positioned interface {
	Position() geometry.Vector2D
}

// PIDController tracks a reference element's vertical position and sets
// the controlled paddle's speed to the PID correction on the Y axis.
type PIDController struct {
	Kp, Ki, Kd float64
	Reference  Positioned

	cumulativeError float64
	lastError       float64
	hasLastError    bool
}

// NewPIDController creates a PID controller with the given gains tracking reference.
func NewPIDController(kp, ki, kd float64, reference Positioned) *PIDController {
	return &PIDController{Kp: kp, Ki: ki, Kd: kd, Reference: reference}
}

// Update sets paddle.Speed.Y to the PID correction against the
// reference's current y. The first call has no derivative term.
func (c *PIDController) Update(paddle *elements.Paddle) error {
	error_ := c.Reference.Position().Y - paddle.Position().Y
	c.cumulativeError += error_

	var derivative float64
	if c.hasLastError {
		derivative = error_ - c.lastError
	}
	c.lastError = error_
	c.hasLastError = true

	correction := c.Kp*error_ + c.Ki*c.cumulativeError + c.Kd*derivative
	paddle.Speed = geometry.Vector2D{X: 0, Y: correction}
	return nil
}
