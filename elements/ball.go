package elements

import (
	"github.com/vlachapelle/spikepaddle/agenterr"
	"github.com/vlachapelle/spikepaddle/geometry"
)

// Ball is a circular Element whose speed magnitude is kept within a
// [Min, Max] envelope after every update.
type Ball struct {
	*Element
	Shape       *geometry.Circle
	SpeedMin    float64
	SpeedMax    float64
	HasEnvelope bool
}

// NewBall creates a ball with an optional speed envelope. Pass
// hasEnvelope=false to leave the speed unconstrained.
func NewBall(shape *geometry.Circle, speed, acceleration geometry.Vector2D, speedMin, speedMax float64, hasEnvelope bool) (*Ball, error) {
	if hasEnvelope && speedMin > speedMax {
		return nil, agenterr.Newf(agenterr.OutOfBounds, "ball speed range minimum (%v) must not exceed its maximum (%v)", speedMin, speedMax)
	}
	return &Ball{
		Element:     NewElement(shape, speed, acceleration),
		Shape:       shape,
		SpeedMin:    speedMin,
		SpeedMax:    speedMax,
		HasEnvelope: hasEnvelope,
	}, nil
}

// adjustSpeed rescales the ball's speed vector to the nearest envelope
// boundary if its magnitude falls outside [SpeedMin, SpeedMax].
func (b *Ball) adjustSpeed() {
	if !b.HasEnvelope {
		return
	}
	current := b.Speed.Norm()
	if current == 0 {
		return
	}
	switch {
	case current < b.SpeedMin:
		b.Speed = b.Speed.Scale(b.SpeedMin / current)
	case current > b.SpeedMax:
		b.Speed = b.Speed.Scale(b.SpeedMax / current)
	}
}

// Update moves the ball, then clamps its resulting speed to the envelope.
func (b *Ball) Update() {
	b.Element.Update()
	b.adjustSpeed()
}

// SetState is like Element.SetState but validates a non-nil speed against
// the envelope before committing it.
func (b *Ball) SetState(position, speed, acceleration *geometry.Vector2D) error {
	if speed != nil && b.HasEnvelope {
		n := speed.Norm()
		if !(b.SpeedMin < n && n < b.SpeedMax) {
			return agenterr.Newf(agenterr.OutOfBounds, "given speed norm (%v) is outside the ball's envelope (%v, %v)", n, b.SpeedMin, b.SpeedMax)
		}
	}
	b.Element.SetState(position, speed, acceleration)
	return nil
}
