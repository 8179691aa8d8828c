package game

// Cue identifies a sound effect
type Cue int

const (
	CuePaddleHit Cue = iota
	CueFail
)

func (c Cue) String() string {
	switch c {
	case CuePaddleHit:
		return "paddle-hit"
	case CueFail:
		return "fail"
	}
	return "unknown"
}

// CueSink receives fire-and-forget sound cues. Implementations must not block.
type CueSink interface {
	PlayCue(Cue)
}

// CueFunc adapts a function to CueSink
type CueFunc func(Cue)

func (f CueFunc) PlayCue(c Cue) {
	f(c)
}

type silentCues struct{}

func (silentCues) PlayCue(Cue) {}
