package protocol

import (
	"encoding/gob"

	"github.com/diegok/solopong/internal/game"
)

// MessageType identifies the type of network message
type MessageType int

const (
	MsgHello MessageType = iota
	MsgWelcome
	MsgFrame
	MsgGoodbye
)

// Message is the wrapper for all network messages
type Message struct {
	Type    MessageType
	Payload interface{}
}

// Hello is sent by a spectator wanting to watch
type Hello struct {
	ViewerName string
}

// Welcome is sent by the server in response to a Hello
type Welcome struct {
	ViewerID    int
	Accepted    bool
	Reason      string
	FieldWidth  float64
	FieldHeight float64
}

// Goodbye tells spectators the match is shutting down
type Goodbye struct {
	Reason string
}

// BoxState is an axis-aligned box on the field
type BoxState struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Frame is one rendered tick as seen by spectators
type Frame struct {
	Tick          int      `json:"tick"`
	FieldWidth    float64  `json:"fieldWidth"`
	FieldHeight   float64  `json:"fieldHeight"`
	Player        BoxState `json:"player"`
	Opponent      BoxState `json:"opponent"`
	Ball          BoxState `json:"ball"`
	PlayerScore   int      `json:"playerScore"`
	OpponentScore int      `json:"opponentScore"`
	Running       bool     `json:"running"`
	Gated         bool     `json:"gated"`
	Elapsed       string   `json:"elapsed"`
}

func boxFrom(r game.Rect) BoxState {
	return BoxState{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func (b BoxState) Rect() game.Rect {
	return game.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// FrameFromSnapshot converts a simulation snapshot to its wire form
func FrameFromSnapshot(s game.Snapshot) Frame {
	return Frame{
		Tick:          s.Tick,
		FieldWidth:    s.FieldWidth,
		FieldHeight:   s.FieldHeight,
		Player:        boxFrom(s.Player),
		Opponent:      boxFrom(s.Opponent),
		Ball:          boxFrom(s.Ball),
		PlayerScore:   s.Score.Player,
		OpponentScore: s.Score.Opponent,
		Running:       s.Running,
		Gated:         s.Gated,
		Elapsed:       s.Elapsed,
	}
}

// Snapshot converts a received frame back for local rendering
func (f Frame) Snapshot() game.Snapshot {
	return game.Snapshot{
		Tick:        f.Tick,
		FieldWidth:  f.FieldWidth,
		FieldHeight: f.FieldHeight,
		Player:      f.Player.Rect(),
		Opponent:    f.Opponent.Rect(),
		Ball:        f.Ball.Rect(),
		Score:       game.Score{Player: f.PlayerScore, Opponent: f.OpponentScore},
		Running:     f.Running,
		Gated:       f.Gated,
		Elapsed:     f.Elapsed,
	}
}

func init() {
	// Register all payload types with gob for network serialization
	gob.Register(Hello{})
	gob.Register(Welcome{})
	gob.Register(Goodbye{})
	gob.Register(Frame{})
}
