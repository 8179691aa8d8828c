package game

// Snapshot is an immutable copy of everything a render sink draws
type Snapshot struct {
	Tick        int
	FieldWidth  float64
	FieldHeight float64
	Player      Rect
	Opponent    Rect
	Ball        Rect
	Score       Score
	Running     bool
	Gated       bool
	Elapsed     string
}

// Snapshot copies the current state for rendering
func (sim *Simulation) Snapshot() Snapshot {
	s := sim.State
	_, gated := sim.gate.(*Session)
	return Snapshot{
		Tick:        s.Tick,
		FieldWidth:  s.Tuning.FieldWidth,
		FieldHeight: s.Tuning.FieldHeight,
		Player:      s.Player.Box(),
		Opponent:    s.Opponent.Box(),
		Ball:        s.Ball.Box(),
		Score:       s.Score,
		Running:     sim.gate.Running(),
		Gated:       gated,
		Elapsed:     IdleElapsed,
	}
}
