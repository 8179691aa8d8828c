package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/diegok/solopong/internal/game"
)

// drain counts the samples a streamer produces before it ends
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestCueStreamer_Lengths(t *testing.T) {
	tests := []struct {
		cue      game.Cue
		expected int
	}{
		{game.CuePaddleHit, sampleRate.N(50 * time.Millisecond)},
		{game.CueFail, sampleRate.N(100*time.Millisecond)*2 + sampleRate.N(200*time.Millisecond)},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			if got := drain(CueStreamer(tt.cue)); got != tt.expected {
				t.Errorf("expected %d samples, got %d", tt.expected, got)
			}
		})
	}
}

func TestSquareWave_Amplitude(t *testing.T) {
	buf := make([][2]float64, 100)
	n, _ := squareWave(440, 10*time.Millisecond).Stream(buf)

	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 0.2 && v != -0.2 {
			t.Fatalf("sample %d: expected +-0.2, got %f", i, v)
		}
	}
}

func TestPlayer_UninitializedIsSilent(t *testing.T) {
	p := NewPlayer(false)
	// Must not panic or block without a speaker
	p.PlayCue(game.CuePaddleHit)
	p.Close()
}

func TestPlayer_MutedSkipsInit(t *testing.T) {
	p := NewPlayer(true)
	if err := p.Init(); err != nil {
		t.Fatalf("expected muted init to succeed, got %v", err)
	}
	if p.initialized {
		t.Error("expected muted player not to open the speaker")
	}
	p.PlayCue(game.CueFail)
}
