package game

import (
	"fmt"
	"time"
)

// IdleElapsed is the elapsed display while no session runs
const IdleElapsed = "00:00"

// Gate decides whether the simulation advances on a tick
type Gate interface {
	Running() bool
}

// AlwaysRunning is the gate of the ungated variant
type AlwaysRunning struct{}

func (AlwaysRunning) Running() bool { return true }

// SessionState is the lifecycle state of a gated match
type SessionState int

const (
	Idle SessionState = iota
	Running
)

func (s SessionState) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Session is the start/restart lifecycle layered over a State. While Idle
// the ball rests at the center and the simulation does not advance.
type Session struct {
	state     *State
	current   SessionState
	startedAt time.Time
}

// NewSession creates an idle session and parks the ball
func NewSession(state *State) *Session {
	s := &Session{state: state}
	state.ResetBall(false)
	return s
}

func (s *Session) Running() bool {
	return s.current == Running
}

func (s *Session) State() SessionState {
	return s.current
}

// StartedAt is the instant of the last Idle to Running transition
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// Start launches the ball. It returns false without side effects when the
// session is already running.
func (s *Session) Start(now time.Time) bool {
	if s.current == Running {
		return false
	}
	s.current = Running
	s.startedAt = now
	s.state.ResetBall(true)
	return true
}

// Restart zeroes the score, centers both paddles and parks the ball.
// It does not start a new session.
func (s *Session) Restart() {
	s.state.ResetScore()
	s.state.CenterPaddles()
	s.current = Idle
	s.startedAt = time.Time{}
	s.state.ResetBall(false)
}

// Elapsed returns whole seconds since start, or zero while idle
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.current != Running {
		return 0
	}
	d := now.Sub(s.startedAt)
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

func (s *Session) ElapsedText(now time.Time) string {
	return FormatElapsed(s.Elapsed(now))
}

// FormatElapsed renders a duration as zero-padded MM:SS
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
