package game

import (
	"fmt"
	"math"
)

// Default tuning values
const (
	DefaultFieldWidth    = 480
	DefaultFieldHeight   = 320
	DefaultPaddleWidth   = 12
	DefaultPaddleHeight  = 90
	DefaultBallSize      = 16
	DefaultPaddleInset   = 20
	DefaultBallSpeed     = 6
	DefaultOpponentSpeed = 4
	DefaultDeflection    = 0.25
	DefaultTickRate      = 60
	MaxTickRate          = 1000
)

// Tuning holds the physical constants of a match. Field names double as
// keys in the TOML tuning file.
type Tuning struct {
	FieldWidth    float64 `toml:"field_width"`
	FieldHeight   float64 `toml:"field_height"`
	PaddleWidth   float64 `toml:"paddle_width"`
	PaddleHeight  float64 `toml:"paddle_height"`
	BallSize      float64 `toml:"ball_size"`
	PaddleInset   float64 `toml:"paddle_inset"`
	BallSpeed     float64 `toml:"ball_speed"`
	OpponentSpeed float64 `toml:"opponent_speed"`
	Deflection    float64 `toml:"deflection"`
	TickRate      int     `toml:"tick_rate"`
}

func DefaultTuning() Tuning {
	return Tuning{
		FieldWidth:    DefaultFieldWidth,
		FieldHeight:   DefaultFieldHeight,
		PaddleWidth:   DefaultPaddleWidth,
		PaddleHeight:  DefaultPaddleHeight,
		BallSize:      DefaultBallSize,
		PaddleInset:   DefaultPaddleInset,
		BallSpeed:     DefaultBallSpeed,
		OpponentSpeed: DefaultOpponentSpeed,
		Deflection:    DefaultDeflection,
		TickRate:      DefaultTickRate,
	}
}

// Validate checks that the tuning describes a playable field
func (t Tuning) Validate() error {
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"field_width", t.FieldWidth},
		{"field_height", t.FieldHeight},
		{"paddle_width", t.PaddleWidth},
		{"paddle_height", t.PaddleHeight},
		{"ball_size", t.BallSize},
		{"paddle_inset", t.PaddleInset},
		{"ball_speed", t.BallSpeed},
		{"opponent_speed", t.OpponentSpeed},
		{"deflection", t.Deflection},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be a finite number, got %g", f.key, f.v)
		}
	}
	if t.FieldWidth <= 0 || t.FieldHeight <= 0 {
		return fmt.Errorf("field must have positive size, got %gx%g", t.FieldWidth, t.FieldHeight)
	}
	if t.PaddleWidth <= 0 || t.PaddleHeight <= 0 {
		return fmt.Errorf("paddle must have positive size, got %gx%g", t.PaddleWidth, t.PaddleHeight)
	}
	if t.PaddleHeight > t.FieldHeight {
		return fmt.Errorf("paddle height %g exceeds field height %g", t.PaddleHeight, t.FieldHeight)
	}
	if t.BallSize <= 0 || t.BallSize > t.FieldHeight {
		return fmt.Errorf("ball size must be in (0, %g], got %g", t.FieldHeight, t.BallSize)
	}
	if t.PaddleInset < 0 || 2*(t.PaddleInset+t.PaddleWidth) >= t.FieldWidth {
		return fmt.Errorf("paddle inset %g leaves no room between paddles", t.PaddleInset)
	}
	if t.BallSpeed <= 0 {
		return fmt.Errorf("ball speed must be positive, got %g", t.BallSpeed)
	}
	// A slower opponent keeps the game winnable.
	if t.OpponentSpeed <= 0 || t.OpponentSpeed >= t.BallSpeed {
		return fmt.Errorf("opponent speed must be in (0, %g), got %g", t.BallSpeed, t.OpponentSpeed)
	}
	if t.Deflection <= 0 {
		return fmt.Errorf("deflection must be positive, got %g", t.Deflection)
	}
	if t.TickRate < 1 || t.TickRate > MaxTickRate {
		return fmt.Errorf("tick rate must be in [1, %d], got %d", MaxTickRate, t.TickRate)
	}
	return nil
}

// OpponentX is the fixed column of the computer paddle
func (t Tuning) OpponentX() float64 {
	return t.FieldWidth - t.PaddleInset - t.PaddleWidth
}
