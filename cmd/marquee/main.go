package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/marquee/audio"
	"github.com/lixenwraith/marquee/content"
	"github.com/lixenwraith/marquee/core"
	"github.com/lixenwraith/marquee/marquee"
	"github.com/lixenwraith/marquee/observer"
	"github.com/lixenwraith/marquee/parameter"
	"github.com/lixenwraith/marquee/render"
)

var (
	errQuit         = errors.New("quit requested")
	errNotTerminal  = errors.New("stdout is not a terminal")
	errScreenClosed = errors.New("screen closed")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the marquee crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, debug, err := loadConfig(args, os.Stderr)
	if err != nil {
		return err
	}

	if logFile := setupLogging(debug); logFile != nil {
		defer logFile.Close()
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}

	mgr := content.NewManager(cfg.Content.Dir)
	mgr.SetSeparator(cfg.Content.Separator)
	unit, err := loadContent(cfg.Content, mgr)
	if err != nil {
		return err
	}

	cellPx := cfg.Terminal.CellWidth
	if cellPx == 0 {
		cellPx = observer.CellPixels(fd)
	}
	log.Printf("Cell width %.1fpx, content %d cells from %s", cellPx, unit.Width(), unit.Source())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()
	if cfg.Terminal.Mouse {
		screen.EnableMouse()
	}

	player := audio.NewPlayer(cfg.Sound.Enabled)
	defer player.Cleanup()

	mq, err := marquee.New(screen, cfg, unit, marquee.Options{
		CellPixels: cellPx,
		Player:     player,
	})
	if err != nil {
		return err
	}
	mq.Mount()
	defer mq.Unmount()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, parameter.EventQueueSize)

	g.Go(guarded(func() error { return pumpEvents(ctx, screen, events) }))
	g.Go(guarded(func() error {
		// Wake PollEvent so the pump observes cancellation
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	}))
	g.Go(guarded(func() error { return renderLoop(ctx, mq, mgr, events) }))

	err = g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		log.Printf("Marquee exiting")
		return nil
	}
	return err
}

// guarded routes panics in errgroup goroutines to the crash handler
func guarded(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return fn()
	}
}

// pumpEvents forwards terminal events until the screen closes or ctx ends
func pumpEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return errScreenClosed
		}
		if ctx.Err() != nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			continue
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// renderLoop owns the marquee: it applies events and draws on every tick
func renderLoop(ctx context.Context, mq *marquee.Marquee, mgr *content.Manager, events <-chan tcell.Event) error {
	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	mq.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok {
				if handleKey(key, mq, mgr) {
					return errQuit
				}
				continue
			}
			mq.HandleEvent(ev)

		case <-frameTicker.C:
			mq.Draw()
		}
	}
}
