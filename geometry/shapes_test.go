package geometry

import (
	"testing"

	"github.com/vlachapelle/spikepaddle/agenterr"
)

func TestCircleContainsPoint(t *testing.T) {
	c := NewCircle(Vector2D{X: 5, Y: 5}, 2.0)
	if !c.ContainsPoint(Vector2D{X: 6, Y: 5}) {
		t.Error("expected point inside circle")
	}
	if c.ContainsPoint(Vector2D{X: 8, Y: 8}) {
		t.Error("expected point outside circle")
	}
}

func TestCirclePerimeterCornersFails(t *testing.T) {
	c := NewCircle(Vector2D{}, 1.0)
	_, err := c.PerimeterCorners()
	if err == nil {
		t.Fatal("expected an error enumerating a circle's corners")
	}
}

func TestCircleCollidesWithCircle(t *testing.T) {
	a := NewCircle(Vector2D{X: 0, Y: 0}, 1.0)
	b := NewCircle(Vector2D{X: 1.5, Y: 0}, 1.0)
	if !a.CollidesWith(b) {
		t.Error("expected overlapping circles to collide")
	}
	c := NewCircle(Vector2D{X: 10, Y: 0}, 1.0)
	if a.CollidesWith(c) {
		t.Error("expected distant circles not to collide")
	}
}

func TestRectangleContainsPoint(t *testing.T) {
	r := NewRectangle(Vector2D{X: 0, Y: 0}, 4, 2, 0.0)
	if !r.ContainsPoint(Vector2D{X: 1, Y: 0.5}) {
		t.Error("expected point inside rectangle")
	}
	if r.ContainsPoint(Vector2D{X: 3, Y: 0}) {
		t.Error("expected point outside rectangle")
	}
}

func TestRectangleClosestPointAndEdgeNormal(t *testing.T) {
	r := NewRectangle(Vector2D{X: 0, Y: 0}, 4, 2, 0.0)
	closest := r.ClosestPoint(Vector2D{X: 10, Y: 0})
	want := Vector2D{X: 2, Y: 0}
	if !closest.Equal(want) {
		t.Fatalf("ClosestPoint = %+v, want %+v", closest, want)
	}
	normal, err := r.EdgeNormal(closest)
	if err != nil {
		t.Fatalf("EdgeNormal returned error: %v", err)
	}
	if !normal.Equal(Vector2D{X: 1, Y: 0}) {
		t.Errorf("EdgeNormal = %+v, want (1,0)", normal)
	}
}

func TestRectangleEdgeNormalRejectsInteriorPoint(t *testing.T) {
	r := NewRectangle(Vector2D{}, 4, 2, 0.0)
	_, err := r.EdgeNormal(Vector2D{X: 0, Y: 0})
	if err == nil {
		t.Fatal("expected an error for a non-perimeter point")
	}
}

func TestTriangleContainsPoint(t *testing.T) {
	tri := NewIsoscelesTriangle(Vector2D{X: 0, Y: 0}, 4, 6, 0.0)
	if !tri.ContainsPoint(Vector2D{X: 0, Y: 0}) {
		t.Error("expected center to be inside the triangle")
	}
	if tri.ContainsPoint(Vector2D{X: 10, Y: 10}) {
		t.Error("expected far point to be outside the triangle")
	}
}

func TestTriangleEdgeNormalMatchesClosestPoint(t *testing.T) {
	tri := NewIsoscelesTriangle(Vector2D{X: 0, Y: 0}, 4, 6, 0.0)
	closest := tri.ClosestPoint(Vector2D{X: 10, Y: 0})
	if _, err := tri.EdgeNormal(closest); err != nil {
		t.Errorf("EdgeNormal(closest point) should succeed, got %v", err)
	}
}

func TestShapeErrorsAreCurvedEdgeKind(t *testing.T) {
	c := NewCircle(Vector2D{}, 1.0)
	_, err := c.PerimeterCorners()
	if !agenterr.Is(err, agenterr.CurvedEdgeError) {
		t.Fatalf("expected a CurvedEdgeError, got %v", err)
	}
}
