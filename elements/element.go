// Package elements implements the movable bodies of a simulation: a base
// Element (shape + speed + acceleration), a Ball with a bounded speed
// envelope, and a controller-driven, y-clamped Paddle.
package elements

import "github.com/vlachapelle/spikepaddle/geometry"

// Element is the base movable body: a shape plus a speed and
// acceleration vector. update translates the shape by the current speed,
// then accumulates the acceleration into the speed for the next tick.
type Element struct {
	Shape        geometry.Shape
	Speed        geometry.Vector2D
	Acceleration geometry.Vector2D
}

// NewElement creates an Element with the given shape, speed and acceleration.
func NewElement(shape geometry.Shape, speed, acceleration geometry.Vector2D) *Element {
	return &Element{Shape: shape, Speed: speed, Acceleration: acceleration}
}

// Update moves the shape by Speed and then integrates Acceleration into Speed.
func (e *Element) Update() {
	e.Shape.MoveCenter(e.Speed)
	e.Speed = e.Speed.Add(e.Acceleration)
}

// SetState replaces any non-nil field. Nil pointers leave the current
// value untouched, mirroring the original's keyword-optional setter.
func (e *Element) SetState(position, speed, acceleration *geometry.Vector2D) {
	if position != nil {
		e.Shape.SetCenter(*position)
	}
	if speed != nil {
		e.Speed = *speed
	}
	if acceleration != nil {
		e.Acceleration = *acceleration
	}
}

// CollidesWith reports whether this element's shape overlaps other's.
func (e *Element) CollidesWith(other *Element) bool {
	return e.Shape.CollidesWith(other.Shape)
}

// Position returns the element's current center.
func (e *Element) Position() geometry.Vector2D {
	return e.Shape.Center()
}
