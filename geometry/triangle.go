package geometry

import "math"

// IsoscelesTriangle is an isosceles-triangular shape whose base is
// parallel to the local y-axis and whose apex points along +x, defined by
// its bounding center, base length and height.
type IsoscelesTriangle struct {
	base
	Base, Height float64

	// referenceVectors holds the local-frame apex, and the two base
	// corners, in that order.
	referenceVectors [3]Vector2D
	edgeNormals      [3]Vector2D
	edgeReferences   [3]Vector2D
}

// NewIsoscelesTriangle creates an isosceles triangle centered at center
// with the given base, height and orientation in degrees.
func NewIsoscelesTriangle(center Vector2D, base_, height, orientationDegrees float64) *IsoscelesTriangle {
	t := &IsoscelesTriangle{base: newBase(center, orientationDegrees), Base: base_, Height: height}
	t.referenceVectors = [3]Vector2D{
		{height / 2.0, 0.0},
		{-height / 2.0, base_ / 2.0},
		{-height / 2.0, -base_ / 2.0},
	}

	centroid := t.referenceVectors[0].Add(t.referenceVectors[1]).Add(t.referenceVectors[2]).Scale(1.0 / 3.0)
	edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for i, e := range edges {
		p0, p1 := t.referenceVectors[e[0]], t.referenceVectors[e[1]]
		normal := p1.Sub(p0).Rotate(90.0).UnitVector()
		midpoint := p0.Add(p1).Scale(0.5)
		if normal.Dot(midpoint.Sub(centroid)) < 0 {
			normal = normal.Neg()
		}
		t.edgeNormals[i] = normal
		t.edgeReferences[i] = p1.Projection(normal)
	}
	return t
}

// ContainsPoint reports whether a global point lies within the triangle,
// via its barycentric coordinates.
func (t *IsoscelesTriangle) ContainsPoint(point Vector2D) bool {
	local := t.ToLocal(point)
	l0, l1, l2 := t.barycentricCoordinates(local)
	return inUnit(l0) && inUnit(l1) && inUnit(l2)
}

func inUnit(v float64) bool { return 0.0 <= v && v <= 1.0 }

// barycentricCoordinates returns the barycentric coordinates of a local
// point against the triangle's three vertices.
func (t *IsoscelesTriangle) barycentricCoordinates(point Vector2D) (l0, l1, l2 float64) {
	v0, v1, v2 := t.referenceVectors[0], t.referenceVectors[1], t.referenceVectors[2]

	a1 := v1.Sub(v0)
	a2 := v2.Sub(v0)
	b := point.Sub(v0)

	detA := a1.X*a2.Y - a1.Y*a2.X

	l1 = (b.X*a2.Y - b.Y*a2.X) / detA
	l2 = (a1.X*b.Y - a1.Y*b.X) / detA
	l0 = 1.0 - l1 - l2
	return l0, l1, l2
}

// CollidesWith reports whether other overlaps this triangle.
func (t *IsoscelesTriangle) CollidesWith(other Shape) bool {
	if c, ok := other.(*Circle); ok {
		localCenter := t.ToLocal(c.center)

		bisectedAngleRad := math.Atan(2.0*t.Height/t.Base) / 2.0
		offset := Vector2D{X: (t.Height - t.Base*math.Tan(bisectedAngleRad)) / 2.0}

		centerOrientation := localCenter.Add(offset).Orientation()
		bisectedAngleDeg := bisectedAngleRad * 180.0 / math.Pi

		var v0, v1 Vector2D
		switch {
		case centerOrientation <= bisectedAngleDeg+90.0:
			v0, v1 = t.referenceVectors[0], t.referenceVectors[1]
		case centerOrientation >= 270.0-bisectedAngleDeg:
			v0, v1 = t.referenceVectors[0], t.referenceVectors[2]
		default:
			v0, v1 = t.referenceVectors[1], t.referenceVectors[2]
		}

		pointVector := localCenter.Sub(v0)
		edgeVector := v1.Sub(v0)
		dot := pointVector.X*edgeVector.X + pointVector.Y*edgeVector.Y

		k := clamp01(dot / edgeVector.SquaredNorm())
		closest := edgeVector.Scale(k).Add(v0)

		return localCenter.Sub(closest).SquaredNorm() <= c.Radius*c.Radius
	}
	return shapesOverlapByCorners(t, other)
}

// PerimeterCorners returns the triangle's three corners in global
// coordinates: apex first, then the two base corners.
func (t *IsoscelesTriangle) PerimeterCorners() ([]Vector2D, error) {
	corners := make([]Vector2D, 3)
	for i, p := range t.referenceVectors {
		corners[i] = t.ToGlobal(p)
	}
	return corners, nil
}

// ClosestPoint returns the point on the triangle's perimeter closest to
// localPoint.
func (t *IsoscelesTriangle) ClosestPoint(localPoint Vector2D) Vector2D {
	edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	best := t.referenceVectors[0]
	bestDist := localPoint.Sub(best).SquaredNorm()
	for _, e := range edges {
		v0, v1 := t.referenceVectors[e[0]], t.referenceVectors[e[1]]
		edgeVector := v1.Sub(v0)
		k := clamp01(localPoint.Sub(v0).Dot(edgeVector) / edgeVector.SquaredNorm())
		candidate := edgeVector.Scale(k).Add(v0)
		if d := localPoint.Sub(candidate).SquaredNorm(); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// EdgeNormal returns the outward unit normal, in local coordinates, of the
// edge a local perimeter point lies on.
func (t *IsoscelesTriangle) EdgeNormal(localPoint Vector2D) (Vector2D, error) {
	for i, normal := range t.edgeNormals {
		if localPoint.Projection(normal).Equal(t.edgeReferences[i]) {
			return normal, nil
		}
	}
	return Vector2D{}, errNotOnPerimeter
}

func clamp01(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
