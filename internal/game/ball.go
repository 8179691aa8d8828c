package game

// Ball is a square ball. X, Y is the top-left corner; VX, VY are per tick.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

func NewBall(size float64) *Ball {
	return &Ball{Size: size}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// Deflect reverses horizontal direction and sets the vertical velocity
// from the offset between the ball center and the paddle center.
func (b *Ball) Deflect(paddleCenterY, coefficient float64) {
	b.VX = -b.VX
	b.VY = coefficient * (b.CenterY() - paddleCenterY)
}

// Stop zeroes the velocity
func (b *Ball) Stop() {
	b.VX = 0
	b.VY = 0
}

func (b *Ball) Moving() bool {
	return b.VX != 0 || b.VY != 0
}

func (b *Ball) Box() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

func (b *Ball) CenterY() float64 {
	return b.Y + b.Size/2
}
