package geometry

// Shape is the common interface satisfied by every shape usable as an
// element's body: containment, collision, closest-point and edge-normal
// queries, plus the local/global coordinate transforms paddle collision
// resolution (spec.md §4.12) needs.
type Shape interface {
	// Center returns the shape's center in global coordinates.
	Center() Vector2D
	// Orientation returns the shape's orientation, in degrees.
	Orientation() float64
	// MoveCenter translates the shape's center by translation.
	MoveCenter(translation Vector2D)
	// SetCenter replaces the shape's center outright.
	SetCenter(center Vector2D)
	// Rotate rotates the shape around its center by angleDegrees.
	Rotate(angleDegrees float64)

	// ToLocal converts a point from global to the shape's local frame.
	ToLocal(point Vector2D) Vector2D
	// ToGlobal converts a point from the shape's local frame to global.
	ToGlobal(point Vector2D) Vector2D

	// ContainsPoint reports whether a global point lies inside the shape.
	ContainsPoint(point Vector2D) bool
	// CollidesWith reports whether another shape overlaps this one.
	CollidesWith(other Shape) bool
	// PerimeterCorners returns the shape's corners in global coordinates.
	// Returns an agenterr.CurvedEdgeError for shapes with no discrete
	// corners.
	PerimeterCorners() ([]Vector2D, error)
	// ClosestPoint returns the point on the shape's perimeter closest to a
	// point expressed in the shape's local frame.
	ClosestPoint(localPoint Vector2D) Vector2D
	// EdgeNormal returns the outward unit normal, in local coordinates, of
	// the edge a local perimeter point lies on.
	EdgeNormal(localPoint Vector2D) (Vector2D, error)
}

// base holds the center/orientation state and coordinate-transform logic
// shared by every concrete shape.
type base struct {
	center      Vector2D
	orientation float64
}

func newBase(center Vector2D, orientationDegrees float64) base {
	return base{center: center, orientation: orientationDegrees}
}

func (b *base) Center() Vector2D { return b.center }

func (b *base) Orientation() float64 { return b.orientation }

func (b *base) MoveCenter(translation Vector2D) { b.center = b.center.Add(translation) }

func (b *base) SetCenter(center Vector2D) { b.center = center }

func (b *base) Rotate(angleDegrees float64) { b.orientation += angleDegrees }

func (b *base) ToLocal(point Vector2D) Vector2D {
	return point.Sub(b.center).Rotate(-b.orientation)
}

func (b *base) ToGlobal(point Vector2D) Vector2D {
	return point.Rotate(b.orientation).Add(b.center)
}
