package main

import (
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/config"
	"github.com/lixenwraith/marquee/content"
	"github.com/lixenwraith/marquee/layout"
	"github.com/lixenwraith/marquee/marquee"
	"github.com/lixenwraith/marquee/parameter"
)

// handleKey applies one key binding and reports whether the user quit
func handleKey(ev *tcell.EventKey, mq *marquee.Marquee, mgr *content.Manager) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	cfg := mq.Config()
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ':
		cfg.Playing = !cfg.Playing
	case 'r':
		if cfg.Direction == layout.Forward {
			cfg.Direction = layout.Reverse
		} else {
			cfg.Direction = layout.Forward
		}
	case '+', '=':
		cfg.Speed += parameter.SpeedStep
	case '-', '_':
		cfg.Speed -= parameter.SpeedStep
	case 'n':
		nextContent(mq, mgr)
		return false
	default:
		return false
	}

	if err := mq.SetConfig(cfg); err != nil {
		log.Printf("Rejected configuration change: %v", err)
	}
	return false
}

// nextContent swaps in the next content file, keeping the current one when
// nothing else is available
func nextContent(mq *marquee.Marquee, mgr *content.Manager) {
	unit, err := mgr.Next()
	if err != nil {
		if !errors.Is(err, content.ErrNoContentFiles) {
			log.Printf("Next content failed: %v", err)
		}
		return
	}
	mq.SetContent(unit)
}

// loadContent picks the initial unit: inline text, then an explicit file,
// then the first usable file in the content directory, then the built-in text
func loadContent(c config.Content, mgr *content.Manager) (*content.Unit, error) {
	if c.Text != "" {
		return content.NewUnit(c.Text), nil
	}
	if c.File != "" {
		return mgr.Load(c.File)
	}

	if err := mgr.Discover(); err != nil {
		return nil, err
	}
	unit, err := mgr.Next()
	if err != nil {
		log.Printf("Using built-in content: %v", err)
		return mgr.Default(), nil
	}
	return unit, nil
}
