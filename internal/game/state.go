package game

import (
	"math/rand"
)

// Score counts points per side
type Score struct {
	Player   int
	Opponent int
}

// State is the entity aggregate of a match: both paddles, the ball and
// the score. It is owned by a single goroutine.
type State struct {
	Tuning   Tuning
	Player   *Paddle
	Opponent *Paddle
	Ball     *Ball
	Score    Score
	Tick     int

	rng *rand.Rand
}

// NewState creates a match with centered paddles and a resting ball.
// A nil rng falls back to a time-seeded source.
func NewState(t Tuning, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &State{
		Tuning:   t,
		Player:   NewPaddle(t.PaddleInset, t.PaddleWidth, t.PaddleHeight, t.FieldHeight),
		Opponent: NewPaddle(t.OpponentX(), t.PaddleWidth, t.PaddleHeight, t.FieldHeight),
		Ball:     NewBall(t.BallSize),
		rng:      rng,
	}
	s.ResetBall(false)
	return s
}

// SetPlayerY centers the player paddle on a raw pointer position
func (s *State) SetPlayerY(rawY float64) {
	s.Player.SetY(rawY - s.Player.Height/2)
}

// ResetBall puts the ball at the field center. When moving is set the ball
// is launched horizontally at full speed toward a random side, with a
// random vertical component; otherwise it rests.
func (s *State) ResetBall(moving bool) {
	b := s.Ball
	b.X = s.Tuning.FieldWidth/2 - b.Size/2
	b.Y = s.Tuning.FieldHeight/2 - b.Size/2

	if !moving {
		b.Stop()
		return
	}

	speed := s.Tuning.BallSpeed
	if s.rng.Intn(2) == 0 {
		b.VX = speed
	} else {
		b.VX = -speed
	}
	b.VY = speed * (s.rng.Float64()*2 - 1)
}

// CenterPaddles returns both paddles to the vertical middle
func (s *State) CenterPaddles() {
	s.Player.Center()
	s.Opponent.Center()
}

func (s *State) ResetScore() {
	s.Score = Score{}
}
