package game

// Paddle is a vertical bat fixed at column X. Y is the top edge.
type Paddle struct {
	X           float64
	Y           float64
	Width       float64
	Height      float64
	FieldHeight float64
}

func NewPaddle(x, width, height, fieldHeight float64) *Paddle {
	p := &Paddle{
		X:           x,
		Width:       width,
		Height:      height,
		FieldHeight: fieldHeight,
	}
	p.Center()
	return p
}

// SetY moves the paddle top to y, keeping it inside the field
func (p *Paddle) SetY(y float64) {
	p.Y = Clamp(y, 0, p.MaxY())
}

// MaxY is the largest top edge that keeps the paddle on the field
func (p *Paddle) MaxY() float64 {
	return p.FieldHeight - p.Height
}

// Center places the paddle at the vertical middle of the field
func (p *Paddle) Center() {
	p.SetY((p.FieldHeight - p.Height) / 2)
}

func (p *Paddle) Box() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}
