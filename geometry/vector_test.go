package geometry

import (
	"math"
	"testing"
)

func TestVectorRotate90(t *testing.T) {
	v := Vector2D{X: 1, Y: 0}
	got := v.Rotate(90.0)
	want := Vector2D{X: 0, Y: 1}
	if !got.Equal(want) {
		t.Errorf("Rotate(90) = %+v, want %+v", got, want)
	}
}

func TestVectorReflection(t *testing.T) {
	v := Vector2D{X: 1, Y: -1}
	axis := Vector2D{X: 0, Y: 1}
	got := v.Reflection(axis)
	want := Vector2D{X: 1, Y: 1}
	if !got.Equal(want) {
		t.Errorf("Reflection = %+v, want %+v", got, want)
	}
}

func TestVectorOrientation(t *testing.T) {
	cases := []struct {
		v    Vector2D
		want float64
	}{
		{Vector2D{1, 0}, 0},
		{Vector2D{0, 1}, 90},
		{Vector2D{-1, 0}, 180},
		{Vector2D{0, -1}, 270},
	}
	for _, c := range cases {
		got := c.v.Orientation()
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Orientation(%+v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestVectorProjection(t *testing.T) {
	v := Vector2D{X: 3, Y: 4}
	axis := Vector2D{X: 1, Y: 0}
	got := v.Projection(axis)
	want := Vector2D{X: 3, Y: 0}
	if !got.Equal(want) {
		t.Errorf("Projection = %+v, want %+v", got, want)
	}
}
