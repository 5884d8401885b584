package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/lixenwraith/marquee/config"
	"github.com/lixenwraith/marquee/layout"
)

// loadConfig parses args, loads the optional config file and applies every
// flag the user set explicitly on top of it
func loadConfig(args []string, output io.Writer) (*config.Config, bool, error) {
	fs := flag.NewFlagSet("marquee", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		configPath = fs.String("config", "", "TOML configuration file")
		debug      = fs.Bool("debug", false, "write logs to logs/marquee.log")

		text = fs.String("text", "", "inline content")
		file = fs.String("file", "", "content file")
		dir  = fs.String("dir", "", "directory of .txt content files (rotated with n)")

		speed      = fs.Float64("speed", 0, "scroll speed in px/s")
		delay      = fs.Float64("delay", 0, "seconds before the first traversal")
		loop       = fs.Int("loop", 0, "traversals before stopping, 0 loops forever")
		autoFill   = fs.Bool("autofill", true, "repeat content to fill the viewport")
		paused     = fs.Bool("paused", false, "start paused")
		pauseHover = fs.Bool("pause-on-hover", false, "pause while the pointer is over the marquee")
		pauseClick = fs.Bool("pause-on-click", false, "pause while the marquee is pressed")

		gradient      = fs.Bool("gradient", false, "fade both edges")
		gradientWidth config.Size

		row       = fs.Int("row", -1, "screen row, -1 centres")
		x         = fs.Int("x", 0, "left column")
		width     = fs.Int("width", 0, "width in cells, 0 extends to the right edge")
		cellWidth = fs.Float64("cell-width", 0, "pixels per cell, 0 detects")
		noMouse   = fs.Bool("no-mouse", false, "disable mouse reporting")
		status    = fs.Bool("status", false, "show the metrics line")
		sound     = fs.Bool("sound", false, "play cycle and finish cues")

		direction layout.Direction
	)
	fs.Var(&gradientWidth, "gradient-width", "edge fade width, px or % of the viewport")
	fs.TextVar(&direction, "direction", layout.Forward, "forward or reverse")

	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}
	if fs.NArg() > 0 {
		return nil, false, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, false, err
	}

	overrides := map[string]func(){
		"text":           func() { cfg.Content.Text = *text },
		"file":           func() { cfg.Content.File = *file },
		"dir":            func() { cfg.Content.Dir = *dir },
		"speed":          func() { cfg.Marquee.Speed = *speed },
		"delay":          func() { cfg.Marquee.Delay = *delay },
		"loop":           func() { cfg.Marquee.Loop = *loop },
		"autofill":       func() { cfg.Marquee.AutoFill = *autoFill },
		"paused":         func() { cfg.Marquee.Playing = !*paused },
		"pause-on-hover": func() { cfg.Marquee.PauseOnHover = *pauseHover },
		"pause-on-click": func() { cfg.Marquee.PauseOnClick = *pauseClick },
		"direction":      func() { cfg.Marquee.Direction = direction },
		"gradient":       func() { cfg.Gradient.Enabled = *gradient },
		"gradient-width": func() { cfg.Gradient.Width = gradientWidth },
		"row":            func() { cfg.Terminal.Row = *row },
		"x":              func() { cfg.Terminal.X = *x },
		"width":          func() { cfg.Terminal.Width = *width },
		"cell-width":     func() { cfg.Terminal.CellWidth = *cellWidth },
		"no-mouse":       func() { cfg.Terminal.Mouse = !*noMouse },
		"status":         func() { cfg.Terminal.Status = *status },
		"sound":          func() { cfg.Sound.Enabled = *sound },
	}
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, *debug, nil
}
