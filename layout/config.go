package layout

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/marquee/parameter"
)

var (
	ErrInvalidSpeed     = errors.New("speed must be a positive number")
	ErrInvalidDelay     = errors.New("delay must be a non-negative number")
	ErrInvalidLoopCount = errors.New("loop count must be non-negative")
	ErrInvalidDirection = errors.New("unknown direction")
)

// ConfigError reports a rejected configuration field
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Direction of travel across the viewport
type Direction uint8

const (
	Forward Direction = iota // content enters on the right, leaves on the left
	Reverse                  // content enters on the left, leaves on the right
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// ParseDirection accepts forward/reverse and the left/right aliases
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward", "left", "normal":
		return Forward, nil
	case "reverse", "right", "reversed":
		return Reverse, nil
	}
	return Forward, &ConfigError{Field: "direction", Value: s, Err: ErrInvalidDirection}
}

// UnmarshalText lets Direction decode from config files and flags
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the declarative input replaced wholesale on every change
type Config struct {
	AutoFill     bool
	Playing      bool
	PauseOnHover bool
	PauseOnClick bool
	Direction    Direction
	Speed        float64 // px/s
	DelaySeconds float64
	LoopCount    int // 0 = infinite
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		AutoFill:     true,
		Playing:      true,
		Direction:    Forward,
		Speed:        parameter.DefaultSpeed,
		DelaySeconds: parameter.DefaultDelaySeconds,
		LoopCount:    parameter.DefaultLoopCount,
	}
}

// Validate rejects values that leave duration undefined; nothing is clamped
func (c Config) Validate() error {
	if !(c.Speed > 0) || math.IsInf(c.Speed, 1) {
		return &ConfigError{Field: "speed", Value: c.Speed, Err: ErrInvalidSpeed}
	}
	if !(c.DelaySeconds >= 0) || math.IsInf(c.DelaySeconds, 1) {
		return &ConfigError{Field: "delay", Value: c.DelaySeconds, Err: ErrInvalidDelay}
	}
	if c.LoopCount < 0 {
		return &ConfigError{Field: "loop", Value: c.LoopCount, Err: ErrInvalidLoopCount}
	}
	if c.Direction != Forward && c.Direction != Reverse {
		return &ConfigError{Field: "direction", Value: uint8(c.Direction), Err: ErrInvalidDirection}
	}
	return nil
}
