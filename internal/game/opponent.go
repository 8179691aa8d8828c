package game

// AIMove steps the computer paddle toward the ball by a fixed amount.
// The target centers the paddle on the ball; an exact match does not move.
func (s *State) AIMove() {
	p := s.Opponent
	target := s.Ball.Y - (p.Height-s.Ball.Size)/2

	y := p.Y
	if y < target {
		y += s.Tuning.OpponentSpeed
	} else if y > target {
		y -= s.Tuning.OpponentSpeed
	}
	p.SetY(y)
}
