package app

import (
	"math/rand"
	"time"

	"github.com/diegok/solopong/internal/game"
)

// Controller is the single owner of a match. It exposes the commands the
// host can issue and keeps the elapsed-time display text. It is not safe
// for concurrent use; the Driver serializes all calls.
type Controller struct {
	state   *game.State
	sim     *game.Simulation
	session *game.Session
	elapsed string
}

// NewController builds a match. A gated match waits for Start; an ungated
// one launches the ball immediately and ignores Start and Restart.
func NewController(t game.Tuning, gated bool, rng *rand.Rand, cues game.CueSink) *Controller {
	state := game.NewState(t, rng)
	c := &Controller{state: state, elapsed: game.IdleElapsed}

	var gate game.Gate = game.AlwaysRunning{}
	if gated {
		c.session = game.NewSession(state)
		gate = c.session
	} else {
		state.ResetBall(true)
	}

	c.sim = game.NewSimulation(state, gate, cues)
	return c
}

func (c *Controller) Gated() bool {
	return c.session != nil
}

func (c *Controller) Running() bool {
	return c.session == nil || c.session.Running()
}

// State exposes the entity state for inspection
func (c *Controller) State() *game.State {
	return c.state
}

// ReportPointerY moves the player paddle to follow the pointer
func (c *Controller) ReportPointerY(y float64) {
	c.state.SetPlayerY(y)
}

// Start begins a gated session. It returns false when ungated or when a
// session is already running.
func (c *Controller) Start(now time.Time) bool {
	if c.session == nil {
		return false
	}
	if !c.session.Start(now) {
		return false
	}
	c.RefreshElapsed(now)
	return true
}

// Restart zeroes the score and returns to idle. It returns false when ungated.
func (c *Controller) Restart() bool {
	if c.session == nil {
		return false
	}
	c.session.Restart()
	c.elapsed = game.IdleElapsed
	return true
}

// RefreshElapsed recomputes the display text for the given instant
func (c *Controller) RefreshElapsed(now time.Time) {
	if c.session == nil {
		return
	}
	c.elapsed = c.session.ElapsedText(now)
}

func (c *Controller) Elapsed() string {
	return c.elapsed
}

// Step runs one simulation tick
func (c *Controller) Step() {
	c.sim.Update()
}

func (c *Controller) Snapshot() game.Snapshot {
	snap := c.sim.Snapshot()
	snap.Elapsed = c.elapsed
	return snap
}
