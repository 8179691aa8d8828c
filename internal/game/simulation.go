package game

// Simulation advances a State one tick at a time
type Simulation struct {
	State *State
	gate  Gate
	cues  CueSink
}

// NewSimulation creates a simulation. A nil gate always runs and a nil
// cue sink discards cues.
func NewSimulation(state *State, gate Gate, cues CueSink) *Simulation {
	if gate == nil {
		gate = AlwaysRunning{}
	}
	if cues == nil {
		cues = silentCues{}
	}
	return &Simulation{State: state, gate: gate, cues: cues}
}

// Update runs one game tick. It does nothing while the gate is closed.
//
// Paddle hits and field exits are evaluated independently, so at high
// speed a ball can be returned and still score in the same tick.
func (sim *Simulation) Update() {
	if !sim.gate.Running() {
		return
	}

	s := sim.State
	t := s.Tuning
	b := s.Ball
	s.Tick++

	b.Move()

	// Top/bottom walls
	if b.Y <= 0 || b.Y+b.Size >= t.FieldHeight {
		b.BounceVertical()
		b.Y = Clamp(b.Y, 0, t.FieldHeight-b.Size)
	}

	if Intersects(b.Box(), s.Player.Box()) {
		b.X = s.Player.X + s.Player.Width
		b.Deflect(s.Player.CenterY(), t.Deflection)
		sim.cues.PlayCue(CuePaddleHit)
	}

	if Intersects(b.Box(), s.Opponent.Box()) {
		b.X = s.Opponent.X - b.Size
		b.Deflect(s.Opponent.CenterY(), t.Deflection)
		sim.cues.PlayCue(CuePaddleHit)
	}

	sim.checkScore()

	s.AIMove()
}

// checkScore awards a point when the ball leaves the field sideways
func (sim *Simulation) checkScore() {
	s := sim.State
	b := s.Ball

	if b.X < 0 {
		s.Score.Opponent++
		sim.cues.PlayCue(CueFail)
		s.ResetBall(sim.gate.Running())
	}

	if b.X+b.Size > s.Tuning.FieldWidth {
		s.Score.Player++
		sim.cues.PlayCue(CueFail)
		s.ResetBall(sim.gate.Running())
	}
}
