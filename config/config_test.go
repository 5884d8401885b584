package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/marquee/layout"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marquee.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

// TestLoadDefaults returns defaults for an empty path
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Marquee.Layout() != layout.DefaultConfig() {
		t.Errorf("Expected default layout config, got %+v", cfg.Marquee.Layout())
	}
	if cfg.Gradient.Enabled {
		t.Error("Expected gradient disabled by default")
	}
	if cfg.Gradient.RGB() != [3]uint8{255, 255, 255} {
		t.Errorf("Expected white gradient, got %v", cfg.Gradient.RGB())
	}
	if cfg.Terminal.Row != -1 || !cfg.Terminal.Mouse {
		t.Errorf("Unexpected terminal defaults: %+v", cfg.Terminal)
	}
}

// TestLoadOverrides keeps defaults for keys the file omits
func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[marquee]
speed = 60
direction = "right"
loop = 3
pause_on_hover = true

[gradient]
enabled = true
color = [0, 0, 0]
width = "10%"

[content]
text = "hello"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	lc := cfg.Marquee.Layout()
	if lc.Speed != 60 {
		t.Errorf("Expected speed 60, got %v", lc.Speed)
	}
	if lc.Direction != layout.Reverse {
		t.Errorf("Expected reverse direction, got %v", lc.Direction)
	}
	if lc.LoopCount != 3 || !lc.PauseOnHover {
		t.Errorf("Expected loop 3 with hover pause, got %+v", lc)
	}
	if !lc.AutoFill || !lc.Playing {
		t.Error("Expected omitted booleans to keep their defaults")
	}

	if !cfg.Gradient.Enabled || cfg.Gradient.RGB() != [3]uint8{0, 0, 0} {
		t.Errorf("Unexpected gradient %+v", cfg.Gradient)
	}
	if got := cfg.Gradient.Width.Pixels(800); got != 80 {
		t.Errorf("Expected 10%% of 800 = 80px, got %v", got)
	}
	if cfg.Content.Text != "hello" {
		t.Errorf("Expected content text, got %q", cfg.Content.Text)
	}
}

// TestLoadRejects reports invalid values instead of clamping them
func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"zero speed", "[marquee]\nspeed = 0\n", layout.ErrInvalidSpeed},
		{"negative delay", "[marquee]\ndelay = -1.0\n", layout.ErrInvalidDelay},
		{"negative loop", "[marquee]\nloop = -2\n", layout.ErrInvalidLoopCount},
		{"bad direction", "[marquee]\ndirection = \"up\"\n", nil},
		{"short colour", "[gradient]\ncolor = [1, 2]\n", ErrInvalidColor},
		{"colour range", "[gradient]\ncolor = [0, 256, 0]\n", ErrInvalidColor},
		{"bad width", "[gradient]\nwidth = \"wide\"\n", nil},
		{"cell width", "[terminal]\ncell_width = 1.0\n", ErrInvalidCellWidth},
		{"row", "[terminal]\nrow = -5\n", ErrInvalidRow},
		{"unknown key", "[marquee]\nsped = 10\n", ErrUnknownKeys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected an error")
			}
			// Decoder-raised errors are only checked for presence
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestUnknownKeysListed names the offending keys
func TestUnknownKeysListed(t *testing.T) {
	_, err := Load(writeConfig(t, "[marquee]\nsped = 10\n[colour]\nx = 1\n"))
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !strings.Contains(err.Error(), "marquee.sped") {
		t.Errorf("Expected key name in error, got %v", err)
	}
}

// TestLoadMissingFile surfaces the filesystem error
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
