package simulation

import (
	"github.com/vlachapelle/spikepaddle/elements"
	"github.com/vlachapelle/spikepaddle/geometry"
)

// frontFaceNormal is the global outward normal that designates a
// paddle's "front": the face a ball must strike to score a reward
// instead of a plain wall-bounce (spec.md §4.11). It is compared against
// the collided edge's normal after rotation to global coordinates, so for
// an unrotated paddle it is the local +x face.
var frontFaceNormal = geometry.Vector2D{X: 1.0, Y: 0.0}

// collidedEdgeNormal returns the global unit normal of the paddle edge
// closest to the ball's center (spec.md §4.12).
func collidedEdgeNormal(ball *elements.Ball, paddle *elements.Paddle) (geometry.Vector2D, error) {
	local := paddle.Shape.ToLocal(ball.Shape.Center())
	closest := paddle.Shape.ClosestPoint(local)
	normal, err := paddle.Shape.EdgeNormal(closest)
	if err != nil {
		return geometry.Vector2D{}, err
	}
	return normal.Rotate(paddle.Shape.Orientation()), nil
}

// bouncePaddle applies the generic wall-bounce-off-a-paddle-face physics
// of spec.md §4.12: reflect the ball's speed about n and add the
// paddle's own speed projected onto n, unless the ball is already moving
// away from the edge, in which case only the paddle's push is
// transferred.
func bouncePaddle(ball *elements.Ball, paddle *elements.Paddle, normal geometry.Vector2D, approaching bool) error {
	adjustment := paddle.Speed.Projection(normal)
	var newSpeed geometry.Vector2D
	if approaching {
		newSpeed = ball.Speed.Reflection(normal).Add(adjustment)
	} else {
		newSpeed = ball.Speed.Add(adjustment)
	}
	return ball.SetState(nil, &newSpeed, nil)
}

// resolvePongPaddleCollision implements Pong's §4.10 paddle-bounce rule:
// approaching is true when the ball is moving into the edge (v_b·n ≥ 0
// in Pong's sign convention — the two paddles face each other along the
// same axis the ball travels).
func resolvePongPaddleCollision(ball *elements.Ball, paddle *elements.Paddle) error {
	normal, err := collidedEdgeNormal(ball, paddle)
	if err != nil {
		return err
	}
	return bouncePaddle(ball, paddle, normal, ball.Speed.Dot(normal) >= 0.0)
}

// resolveCatchAgentCollision implements Catch's §4.11 agent-paddle rule:
// a strike on the front face (global edge normal == +X) is a
// catch; any other face is a plain wall-bounce. Returns whether the hit
// was on the front face.
func resolveCatchAgentCollision(ball *elements.Ball, paddle *elements.Paddle) (bool, error) {
	normal, err := collidedEdgeNormal(ball, paddle)
	if err != nil {
		return false, err
	}
	if normal.Equal(frontFaceNormal) {
		return true, nil
	}
	return false, bouncePaddle(ball, paddle, normal, ball.Speed.Dot(normal) <= 0.0)
}
