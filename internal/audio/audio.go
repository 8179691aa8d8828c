package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/solopong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Player plays game cues through the speaker. A Player that failed to
// initialize stays silent.
type Player struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewPlayer creates a player; call Init before playing
func NewPlayer(muted bool) *Player {
	return &Player{muted: muted}
}

// Init initializes the audio system
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.muted {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	p.initialized = true
	return nil
}

// Close shuts down the audio system
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Close()
		p.initialized = false
	}
}

// PlayCue implements game.CueSink. It never blocks the caller.
func (p *Player) PlayCue(c game.Cue) {
	p.mu.Lock()
	ready := p.initialized && !p.muted
	p.mu.Unlock()
	if !ready {
		return
	}

	speaker.Play(CueStreamer(c))
}

// CueStreamer returns the sound for a cue
func CueStreamer(c game.Cue) beep.Streamer {
	switch c {
	case game.CuePaddleHit:
		// High-pitched short beep
		return squareWave(880, 50*time.Millisecond)
	case game.CueFail:
		// Descending tones with a sine tail
		return beep.Seq(
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 100*time.Millisecond),
			tone(220, 200*time.Millisecond),
		)
	}
	return beep.Silence(0)
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := math.Sin(phase) * 0.3
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
