package config

import (
	"errors"
	"testing"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    Size
		wantErr bool
	}{
		{"200", Size{Value: 200}, false},
		{"200px", Size{Value: 200}, false},
		{" 12.5 PX ", Size{Value: 12.5}, false},
		{"25%", Size{Value: 25, Percent: true}, false},
		{"0", Size{}, false},
		{"-3px", Size{}, true},
		{"%", Size{}, true},
		{"wide", Size{}, true},
		{"NaN", Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("Expected ErrInvalidSize, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestSizePixels(t *testing.T) {
	if got := (Size{Value: 150}).Pixels(1000); got != 150 {
		t.Errorf("Expected absolute 150, got %v", got)
	}
	if got := (Size{Value: 50, Percent: true}).Pixels(640); got != 320 {
		t.Errorf("Expected 320, got %v", got)
	}
}

func TestSizeUnmarshalTOML(t *testing.T) {
	var s Size
	if err := s.UnmarshalTOML(int64(64)); err != nil || s != (Size{Value: 64}) {
		t.Errorf("Integer: got %+v, %v", s, err)
	}
	if err := s.UnmarshalTOML(32.5); err != nil || s != (Size{Value: 32.5}) {
		t.Errorf("Float: got %+v, %v", s, err)
	}
	if err := s.UnmarshalTOML("5%"); err != nil || s != (Size{Value: 5, Percent: true}) {
		t.Errorf("String: got %+v, %v", s, err)
	}
	if err := s.UnmarshalTOML(true); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Expected ErrInvalidSize for bool, got %v", err)
	}
}

func TestSizeString(t *testing.T) {
	if got := (Size{Value: 200}).String(); got != "200px" {
		t.Errorf("Expected 200px, got %s", got)
	}
	if got := (Size{Value: 12.5, Percent: true}).String(); got != "12.5%" {
		t.Errorf("Expected 12.5%%, got %s", got)
	}
}
