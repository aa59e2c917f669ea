package geometry

// Circle is a circular shape defined by its center and radius. It has no
// discrete perimeter corners.
type Circle struct {
	base
	Radius float64
}

// NewCircle creates a circle centered at center with the given radius.
func NewCircle(center Vector2D, radius float64) *Circle {
	return &Circle{base: newBase(center, 0.0), Radius: radius}
}

// ContainsPoint reports whether a global point lies within the circle.
func (c *Circle) ContainsPoint(point Vector2D) bool {
	return point.Sub(c.center).SquaredNorm() <= (c.Radius+Tolerance)*(c.Radius+Tolerance)
}

// CollidesWith reports whether other overlaps this circle.
func (c *Circle) CollidesWith(other Shape) bool {
	if oc, ok := other.(*Circle); ok {
		r := c.Radius + oc.Radius + 2.0*Tolerance
		return oc.center.Sub(c.center).SquaredNorm() <= r*r
	}
	return other.CollidesWith(c)
}

// PerimeterCorners always fails for a circle: it has no discrete corners.
func (c *Circle) PerimeterCorners() ([]Vector2D, error) {
	return nil, errCurvedEdge()
}

// ClosestPoint returns the point on the circle's perimeter closest to
// localPoint.
func (c *Circle) ClosestPoint(localPoint Vector2D) Vector2D {
	return localPoint.Scale(c.Radius / localPoint.Norm())
}

// EdgeNormal returns the outward unit normal at a local perimeter point.
func (c *Circle) EdgeNormal(localPoint Vector2D) (Vector2D, error) {
	if localPoint.SquaredNorm()-c.Radius*c.Radius <= Tolerance*Tolerance {
		return localPoint.UnitVector(), nil
	}
	return Vector2D{}, errNotOnPerimeter
}
