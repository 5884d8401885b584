// Package config loads marquee settings from a TOML file.
//
// Missing keys keep their defaults; unknown keys are rejected so typos do
// not silently fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/marquee/layout"
	"github.com/lixenwraith/marquee/parameter"
)

var (
	ErrInvalidColor     = errors.New("colour must be three components in 0..255")
	ErrInvalidCellWidth = errors.New("cell width must be 0 (detect) or within the supported range")
	ErrInvalidRow       = errors.New("row must be -1 (centre) or a screen row")
	ErrUnknownKeys      = errors.New("unknown configuration keys")
)

// Config is the full file-level configuration
type Config struct {
	Marquee  Marquee  `toml:"marquee"`
	Gradient Gradient `toml:"gradient"`
	Terminal Terminal `toml:"terminal"`
	Content  Content  `toml:"content"`
	Sound    Sound    `toml:"sound"`
}

// Marquee mirrors layout.Config with file-friendly names
type Marquee struct {
	AutoFill     bool             `toml:"auto_fill"`
	Playing      bool             `toml:"playing"`
	PauseOnHover bool             `toml:"pause_on_hover"`
	PauseOnClick bool             `toml:"pause_on_click"`
	Direction    layout.Direction `toml:"direction"`
	Speed        float64          `toml:"speed"`
	Delay        float64          `toml:"delay"`
	Loop         int              `toml:"loop"`
}

// Gradient is the decorative edge fade
type Gradient struct {
	Enabled bool  `toml:"enabled"`
	Color   []int `toml:"color"`
	Width   Size  `toml:"width"`
}

// Terminal places the viewport on screen
type Terminal struct {
	Row       int     `toml:"row"`        // -1 centres vertically
	X         int     `toml:"x"`          // left column
	Width     int     `toml:"width"`      // 0 extends to the right edge
	CellWidth float64 `toml:"cell_width"` // pixels per cell, 0 detects
	Mouse     bool    `toml:"mouse"`
	Status    bool    `toml:"status"`
}

// Content selects what scrolls
type Content struct {
	Text      string `toml:"text"`
	File      string `toml:"file"`
	Dir       string `toml:"dir"`
	Separator string `toml:"separator"`
}

// Sound toggles audio cues
type Sound struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the documented defaults
func Default() *Config {
	lc := layout.DefaultConfig()
	return &Config{
		Marquee: Marquee{
			AutoFill:     lc.AutoFill,
			Playing:      lc.Playing,
			PauseOnHover: lc.PauseOnHover,
			PauseOnClick: lc.PauseOnClick,
			Direction:    lc.Direction,
			Speed:        lc.Speed,
			Delay:        lc.DelaySeconds,
			Loop:         lc.LoopCount,
		},
		Gradient: Gradient{
			Color: []int{
				int(parameter.DefaultGradientColor[0]),
				int(parameter.DefaultGradientColor[1]),
				int(parameter.DefaultGradientColor[2]),
			},
			Width: Size{Value: parameter.DefaultGradientWidthPx},
		},
		Terminal: Terminal{
			Row:   -1,
			Mouse: true,
		},
		Content: Content{
			Separator: parameter.ContentSeparator,
		},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Layout converts the marquee section to the engine configuration
func (m Marquee) Layout() layout.Config {
	return layout.Config{
		AutoFill:     m.AutoFill,
		Playing:      m.Playing,
		PauseOnHover: m.PauseOnHover,
		PauseOnClick: m.PauseOnClick,
		Direction:    m.Direction,
		Speed:        m.Speed,
		DelaySeconds: m.Delay,
		LoopCount:    m.Loop,
	}
}

// RGB returns the gradient colour; call Validate first
func (g Gradient) RGB() [3]uint8 {
	var rgb [3]uint8
	for i := 0; i < 3 && i < len(g.Color); i++ {
		rgb[i] = uint8(g.Color[i])
	}
	return rgb
}

// Validate checks every section; configuration errors are reported, never clamped
func (c *Config) Validate() error {
	if err := c.Marquee.Layout().Validate(); err != nil {
		return err
	}

	if len(c.Gradient.Color) != 3 {
		return fmt.Errorf("gradient.color %v: %w", c.Gradient.Color, ErrInvalidColor)
	}
	for _, v := range c.Gradient.Color {
		if v < 0 || v > 255 {
			return fmt.Errorf("gradient.color %v: %w", c.Gradient.Color, ErrInvalidColor)
		}
	}

	if c.Terminal.CellWidth != 0 &&
		(c.Terminal.CellWidth < parameter.MinCellPixels || c.Terminal.CellWidth > parameter.MaxCellPixels) {
		return fmt.Errorf("terminal.cell_width %v: %w", c.Terminal.CellWidth, ErrInvalidCellWidth)
	}
	if c.Terminal.Row < -1 {
		return fmt.Errorf("terminal.row %d: %w", c.Terminal.Row, ErrInvalidRow)
	}
	return nil
}
