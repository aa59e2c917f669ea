package geometry

// Rectangle is an axis-aligned-in-its-own-frame rectangular shape, defined
// by its center, width (local x-extent) and height (local y-extent).
type Rectangle struct {
	base
	Width, Height float64

	perimeterPoints [4]Vector2D
	edgeNormals     [4]Vector2D
	edgeReferences  [4]Vector2D
}

// NewRectangle creates a rectangle centered at center with the given width,
// height and orientation in degrees.
func NewRectangle(center Vector2D, width, height, orientationDegrees float64) *Rectangle {
	r := &Rectangle{base: newBase(center, orientationDegrees), Width: width, Height: height}
	r.perimeterPoints = [4]Vector2D{
		{width / 2.0, height / 2.0},
		{width / 2.0, -height / 2.0},
		{-width / 2.0, -height / 2.0},
		{-width / 2.0, height / 2.0},
	}
	for i := range r.perimeterPoints {
		p0 := r.perimeterPoints[(i+3)%4]
		p1 := r.perimeterPoints[i]
		normal := p1.Sub(p0).Rotate(90.0).UnitVector()
		r.edgeNormals[i] = normal
		r.edgeReferences[i] = p1.Projection(normal)
	}
	return r
}

// ContainsPoint reports whether a global point lies within the rectangle.
func (r *Rectangle) ContainsPoint(point Vector2D) bool {
	local := r.ToLocal(point)
	return -r.Width/2.0 <= local.X && local.X <= r.Width/2.0 &&
		-r.Height/2.0 <= local.Y && local.Y <= r.Height/2.0
}

// CollidesWith reports whether other overlaps this rectangle.
func (r *Rectangle) CollidesWith(other Shape) bool {
	if c, ok := other.(*Circle); ok {
		localCenter := r.ToLocal(c.center)
		closest := r.ClosestPoint(localCenter)
		return localCenter.Sub(closest).SquaredNorm() <= c.Radius*c.Radius
	}
	return shapesOverlapByCorners(r, other)
}

// PerimeterCorners returns the rectangle's four corners in global
// coordinates.
func (r *Rectangle) PerimeterCorners() ([]Vector2D, error) {
	corners := make([]Vector2D, 4)
	for i, p := range r.perimeterPoints {
		corners[i] = r.ToGlobal(p)
	}
	return corners, nil
}

// ClosestPoint returns the point on the rectangle's perimeter (or inside
// it) closest to localPoint, clamped to the rectangle's bounds.
func (r *Rectangle) ClosestPoint(localPoint Vector2D) Vector2D {
	clamp := func(v, lo, hi float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	return Vector2D{
		X: clamp(localPoint.X, -r.Width/2.0, r.Width/2.0),
		Y: clamp(localPoint.Y, -r.Height/2.0, r.Height/2.0),
	}
}

// EdgeNormal returns the outward unit normal, in local coordinates, of the
// edge a local perimeter point lies on.
func (r *Rectangle) EdgeNormal(localPoint Vector2D) (Vector2D, error) {
	for i, normal := range r.edgeNormals {
		if localPoint.Projection(normal).Equal(r.edgeReferences[i]) {
			return normal, nil
		}
	}
	return Vector2D{}, errNotOnPerimeter
}

// shapesOverlapByCorners implements the generic polygon/polygon overlap
// test used when neither shape is a Circle: two convex shapes overlap if
// either one contains a corner of the other.
func shapesOverlapByCorners(a, b Shape) bool {
	aCorners, errA := a.PerimeterCorners()
	bCorners, errB := b.PerimeterCorners()
	if errA != nil || errB != nil {
		return b.CollidesWith(a)
	}
	for _, corner := range bCorners {
		if a.ContainsPoint(corner) {
			return true
		}
	}
	for _, corner := range aCorners {
		if b.ContainsPoint(corner) {
			return true
		}
	}
	return false
}
