package elements

import (
	"github.com/vlachapelle/spikepaddle/agenterr"
	"github.com/vlachapelle/spikepaddle/geometry"
)

// Controller drives a Paddle's speed or position each tick. Implemented
// by controllers.PIDController, controllers.ConstantSpeedNetworkController
// and controllers.LinearRandomWalker; defined here, not in a controllers
// package, so elements never imports its own consumer (spec.md §9:
// "controllers as callable objects ... no trait is needed beyond that one
// verb").
type Controller interface {
	Update(paddle *Paddle) error
}

// Paddle is a controller-driven Element restricted to vertical motion
// within [YMin, YMax]; its center clamps to that range every tick and the
// vertical speed zeroes out on clamp.
type Paddle struct {
	*Element
	Controller Controller
	YMin, YMax float64
}

// NewPaddle creates a paddle with the given shape, controller and
// y-clamp range.
func NewPaddle(shape geometry.Shape, controller Controller, yMin, yMax float64) (*Paddle, error) {
	if yMin > yMax {
		return nil, agenterr.Newf(agenterr.OutOfBounds, "paddle y range minimum (%v) must not exceed its maximum (%v)", yMin, yMax)
	}
	return &Paddle{
		Element:    NewElement(shape, geometry.Vector2D{}, geometry.Vector2D{}),
		Controller: controller,
		YMin:       yMin,
		YMax:       yMax,
	}, nil
}

// adjustPosition clamps the paddle's center to [YMin, YMax], zeroing its
// vertical speed when the clamp engages.
func (p *Paddle) adjustPosition() {
	center := p.Shape.Center()
	switch {
	case center.Y < p.YMin:
		p.Shape.MoveCenter(geometry.Vector2D{Y: p.YMin - center.Y})
		p.Speed.Y = 0
	case center.Y > p.YMax:
		p.Shape.MoveCenter(geometry.Vector2D{Y: p.YMax - center.Y})
		p.Speed.Y = 0
	}
}

// Update runs the controller, then the base translate-and-accelerate
// step, then clamps the resulting position.
func (p *Paddle) Update() error {
	if err := p.Controller.Update(p); err != nil {
		return err
	}
	p.Element.Update()
	p.adjustPosition()
	return nil
}

// SetState is like Element.SetState but rejects a non-nil position whose
// y falls outside [YMin, YMax].
func (p *Paddle) SetState(position, speed, acceleration *geometry.Vector2D) error {
	if position != nil && !(p.YMin < position.Y && position.Y < p.YMax) {
		return agenterr.Newf(agenterr.OutOfBounds, "given position y (%v) is outside the paddle's range (%v, %v)", position.Y, p.YMin, p.YMax)
	}
	p.Element.SetState(position, speed, acceleration)
	return nil
}
