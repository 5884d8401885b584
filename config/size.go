package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidSize = errors.New("size must be a non-negative number, \"<n>px\" or \"<n>%\"")

// Size is a length given as pixels or as a percentage of the viewport
type Size struct {
	Value   float64
	Percent bool
}

// Pixels resolves the size against the container width
func (s Size) Pixels(containerPx float64) float64 {
	if s.Percent {
		return containerPx * s.Value / 100
	}
	return s.Value
}

func (s Size) String() string {
	v := strconv.FormatFloat(s.Value, 'f', -1, 64)
	if s.Percent {
		return v + "%"
	}
	return v + "px"
}

// ParseSize accepts "200", "200px" and "25%"
func ParseSize(text string) (Size, error) {
	t := strings.TrimSpace(strings.ToLower(text))

	var s Size
	switch {
	case strings.HasSuffix(t, "%"):
		s.Percent = true
		t = strings.TrimSpace(strings.TrimSuffix(t, "%"))
	case strings.HasSuffix(t, "px"):
		t = strings.TrimSpace(strings.TrimSuffix(t, "px"))
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Size{}, fmt.Errorf("%q: %w", text, ErrInvalidSize)
	}
	s.Value = v
	return s, nil
}

// UnmarshalTOML accepts a bare number (pixels) or a sized string
func (s *Size) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		if v < 0 {
			return fmt.Errorf("%d: %w", v, ErrInvalidSize)
		}
		*s = Size{Value: float64(v)}
	case float64:
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%v: %w", v, ErrInvalidSize)
		}
		*s = Size{Value: v}
	case string:
		parsed, err := ParseSize(v)
		if err != nil {
			return err
		}
		*s = parsed
	default:
		return fmt.Errorf("%v (%T): %w", data, data, ErrInvalidSize)
	}
	return nil
}

// Set implements flag.Value
func (s *Size) Set(text string) error {
	parsed, err := ParseSize(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
