package geometry

import (
	"errors"

	"github.com/vlachapelle/spikepaddle/agenterr"
)

// errCurvedEdge is returned when a shape with no discrete perimeter corners
// (a Circle) is asked to enumerate them. Named in the system's error
// taxonomy (agenterr.CurvedEdgeError) because callers are expected to
// branch on it.
func errCurvedEdge() error {
	return agenterr.New(agenterr.CurvedEdgeError, "corners of a curved shape are not defined")
}

// errNotOnPerimeter signals a point that does not lie on a shape's
// perimeter was handed to EdgeNormal. This is an internal invariant
// violation of the collision-resolution algorithm (spec.md §4.12 always
// derives the query point via ClosestPoint first), not a condition
// callers are expected to branch on, so it is a plain error rather than a
// named agenterr.Kind.
var errNotOnPerimeter = errors.New("geometry: point is not on this shape's perimeter and is not associated with any edge")
