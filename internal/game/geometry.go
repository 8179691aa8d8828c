package game

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Intersects reports whether the ball box overlaps the paddle box.
// Boxes that only touch along an edge do not intersect.
func Intersects(ball, paddle Rect) bool {
	return ball.X < paddle.X+paddle.W &&
		ball.X+ball.W > paddle.X &&
		ball.Y < paddle.Y+paddle.H &&
		ball.Y+ball.H > paddle.Y
}

// CenterY returns the vertical center of the box.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}
