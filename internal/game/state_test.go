package game

import (
	"math"
	"math/rand"
	"testing"
)

func newTestState() *State {
	return NewState(DefaultTuning(), rand.New(rand.NewSource(1)))
}

func TestNewState(t *testing.T) {
	s := newTestState()

	if s.Player.X != DefaultPaddleInset {
		t.Errorf("expected player X=%d, got %f", DefaultPaddleInset, s.Player.X)
	}
	expectedOpponentX := float64(DefaultFieldWidth - DefaultPaddleInset - DefaultPaddleWidth)
	if s.Opponent.X != expectedOpponentX {
		t.Errorf("expected opponent X=%f, got %f", expectedOpponentX, s.Opponent.X)
	}
	if s.Player.Y != 115 || s.Opponent.Y != 115 {
		t.Errorf("expected paddles centered at Y=115, got %f and %f", s.Player.Y, s.Opponent.Y)
	}
	if s.Ball.Moving() {
		t.Errorf("expected ball at rest, got VX=%f VY=%f", s.Ball.VX, s.Ball.VY)
	}
	if s.Score != (Score{}) {
		t.Errorf("expected zero score, got %+v", s.Score)
	}
}

func TestState_SetPlayerY(t *testing.T) {
	s := newTestState()

	tests := []struct {
		name     string
		rawY     float64
		expected float64
	}{
		{"middle", 160, 115},
		{"near top", 10, 0},
		{"above field", -50, 0},
		{"near bottom", 310, 230},
		{"below field", 1000, 230},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetPlayerY(tt.rawY)
			if s.Player.Y != tt.expected {
				t.Errorf("SetPlayerY(%f): expected Y=%f, got %f", tt.rawY, tt.expected, s.Player.Y)
			}
		})
	}
}

func TestState_ResetBallResting(t *testing.T) {
	s := newTestState()
	s.Ball.X, s.Ball.Y = 3, 4
	s.Ball.VX, s.Ball.VY = 6, -2

	for i := 0; i < 5; i++ {
		s.ResetBall(false)
		if s.Ball.X != 232 || s.Ball.Y != 152 {
			t.Fatalf("reset %d: expected ball at (232, 152), got (%f, %f)", i, s.Ball.X, s.Ball.Y)
		}
		if s.Ball.VX != 0 || s.Ball.VY != 0 {
			t.Fatalf("reset %d: expected zero velocity, got (%f, %f)", i, s.Ball.VX, s.Ball.VY)
		}
	}
}

func TestState_ResetBallMoving(t *testing.T) {
	s := newTestState()
	sawLeft, sawRight := false, false

	for i := 0; i < 200; i++ {
		s.ResetBall(true)
		if math.Abs(s.Ball.VX) != DefaultBallSpeed {
			t.Fatalf("expected |VX|=%d, got %f", DefaultBallSpeed, s.Ball.VX)
		}
		if math.Abs(s.Ball.VY) > DefaultBallSpeed {
			t.Fatalf("expected |VY|<=%d, got %f", DefaultBallSpeed, s.Ball.VY)
		}
		if s.Ball.VX > 0 {
			sawRight = true
		} else {
			sawLeft = true
		}
	}

	if !sawLeft || !sawRight {
		t.Errorf("expected launches in both directions, left=%v right=%v", sawLeft, sawRight)
	}
}

func TestState_CenterPaddlesAndResetScore(t *testing.T) {
	s := newTestState()
	s.Player.SetY(0)
	s.Opponent.SetY(230)
	s.Score = Score{Player: 3, Opponent: 7}

	s.CenterPaddles()
	s.ResetScore()

	if s.Player.Y != 115 || s.Opponent.Y != 115 {
		t.Errorf("expected centered paddles, got %f and %f", s.Player.Y, s.Opponent.Y)
	}
	if s.Score != (Score{}) {
		t.Errorf("expected zero score, got %+v", s.Score)
	}
}

func TestState_AIMoveDeadZone(t *testing.T) {
	s := newTestState()
	// target = 152 - (90-16)/2 = 115, the centered position
	s.Ball.Y = 152

	s.AIMove()

	if s.Opponent.Y != 115 {
		t.Errorf("expected opponent to stay at 115, got %f", s.Opponent.Y)
	}
}

func TestState_AIMoveTracks(t *testing.T) {
	s := newTestState()

	s.Ball.Y = 10
	s.AIMove()
	if s.Opponent.Y != 115-DefaultOpponentSpeed {
		t.Errorf("expected opponent to move up to %d, got %f", 115-DefaultOpponentSpeed, s.Opponent.Y)
	}

	s.Ball.Y = 300
	s.AIMove()
	if s.Opponent.Y != 115 {
		t.Errorf("expected opponent to move back down to 115, got %f", s.Opponent.Y)
	}
}

func TestState_AIMoveClamped(t *testing.T) {
	s := newTestState()
	s.Opponent.SetY(1)
	s.Ball.Y = -100

	s.AIMove()

	if s.Opponent.Y != 0 {
		t.Errorf("expected opponent clamped to 0, got %f", s.Opponent.Y)
	}

	s.Opponent.SetY(229)
	s.Ball.Y = 1000
	s.AIMove()

	if s.Opponent.Y != 230 {
		t.Errorf("expected opponent clamped to 230, got %f", s.Opponent.Y)
	}
}
