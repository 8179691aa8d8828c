package game

import (
	"math"
	"testing"
	"time"
)

func TestSession_StartsIdle(t *testing.T) {
	state := newTestState()
	state.ResetBall(true)
	session := NewSession(state)

	if session.Running() {
		t.Error("expected new session to be idle")
	}
	if session.State() != Idle {
		t.Errorf("expected Idle, got %v", session.State())
	}
	if state.Ball.Moving() {
		t.Error("expected ball parked by new session")
	}
	if session.ElapsedText(time.Now()) != IdleElapsed {
		t.Errorf("expected %q while idle, got %q", IdleElapsed, session.ElapsedText(time.Now()))
	}
}

func TestSession_StartIdempotent(t *testing.T) {
	state := newTestState()
	session := NewSession(state)
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	if !session.Start(t0) {
		t.Fatal("expected first start to succeed")
	}
	if !state.Ball.Moving() {
		t.Error("expected ball launched on start")
	}

	vx, vy := state.Ball.VX, state.Ball.VY
	if session.Start(t0.Add(5 * time.Second)) {
		t.Error("expected second start to be a no-op")
	}
	if !session.StartedAt().Equal(t0) {
		t.Errorf("expected start instant %v, got %v", t0, session.StartedAt())
	}
	if state.Ball.VX != vx || state.Ball.VY != vy {
		t.Error("expected second start not to relaunch the ball")
	}
}

func TestSession_Restart(t *testing.T) {
	state := newTestState()
	session := NewSession(state)
	session.Start(time.Now())
	state.Score = Score{Player: 4, Opponent: 2}
	state.Player.SetY(0)
	state.Opponent.SetY(230)

	session.Restart()

	if session.Running() {
		t.Error("expected restart to return to idle")
	}
	if state.Score != (Score{}) {
		t.Errorf("expected zero score, got %+v", state.Score)
	}
	if state.Player.Y != 115 || state.Opponent.Y != 115 {
		t.Errorf("expected centered paddles, got %f and %f", state.Player.Y, state.Opponent.Y)
	}
	if state.Ball.Moving() {
		t.Error("expected ball parked after restart")
	}
	if !session.StartedAt().IsZero() {
		t.Errorf("expected start instant cleared, got %v", session.StartedAt())
	}

	if !session.Start(time.Now()) {
		t.Error("expected start to succeed after restart")
	}
}

func TestSession_ElapsedText(t *testing.T) {
	state := newTestState()
	session := NewSession(state)
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	session.Start(t0)

	tests := []struct {
		name     string
		after    time.Duration
		expected string
	}{
		{"at start", 0, "00:00"},
		{"partial second", 900 * time.Millisecond, "00:00"},
		{"one minute one second", 61*time.Second + 900*time.Millisecond, "01:01"},
		{"ten minutes", 10 * time.Minute, "10:00"},
		{"clock skew", -time.Second, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := session.ElapsedText(t0.Add(tt.after))
			if got != tt.expected {
				t.Errorf("ElapsedText(+%v) = %q, want %q", tt.after, got, tt.expected)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := FormatElapsed(125 * time.Minute); got != "125:00" {
		t.Errorf("expected minutes to keep growing, got %q", got)
	}
	if got := FormatElapsed(-time.Minute); got != "00:00" {
		t.Errorf("expected negative to clamp, got %q", got)
	}
}

func TestAlwaysRunning(t *testing.T) {
	var g Gate = AlwaysRunning{}
	if !g.Running() {
		t.Error("expected AlwaysRunning to run")
	}
}

func TestTuning_Validate(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("expected default tuning to be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"opponent as fast as ball", func(t *Tuning) { t.OpponentSpeed = t.BallSpeed }},
		{"opponent faster than ball", func(t *Tuning) { t.OpponentSpeed = 10 }},
		{"zero field", func(t *Tuning) { t.FieldWidth = 0 }},
		{"paddle taller than field", func(t *Tuning) { t.PaddleHeight = 400 }},
		{"zero ball", func(t *Tuning) { t.BallSize = 0 }},
		{"inset too wide", func(t *Tuning) { t.PaddleInset = 300 }},
		{"zero tick rate", func(t *Tuning) { t.TickRate = 0 }},
		{"negative deflection", func(t *Tuning) { t.Deflection = -1 }},
		{"nan ball speed", func(t *Tuning) { t.BallSpeed = math.NaN(); t.OpponentSpeed = math.NaN() }},
		{"nan paddle height", func(t *Tuning) { t.PaddleHeight = math.NaN() }},
		{"infinite field width", func(t *Tuning) { t.FieldWidth = math.Inf(1) }},
		{"infinite deflection", func(t *Tuning) { t.Deflection = math.Inf(1) }},
		{"tick rate above max", func(t *Tuning) { t.TickRate = MaxTickRate + 1 }},
		{"tick rate overflowing interval", func(t *Tuning) { t.TickRate = 2000000000 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)
			if err := tuning.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCue_String(t *testing.T) {
	if CuePaddleHit.String() != "paddle-hit" || CueFail.String() != "fail" {
		t.Errorf("unexpected cue names %q %q", CuePaddleHit, CueFail)
	}
}
