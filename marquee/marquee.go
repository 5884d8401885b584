package marquee

import (
	"log"
	"math"
	"path/filepath"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/animation"
	"github.com/lixenwraith/marquee/audio"
	"github.com/lixenwraith/marquee/clock"
	"github.com/lixenwraith/marquee/config"
	"github.com/lixenwraith/marquee/content"
	"github.com/lixenwraith/marquee/layout"
	"github.com/lixenwraith/marquee/observer"
	"github.com/lixenwraith/marquee/parameter"
	"github.com/lixenwraith/marquee/render"
	"github.com/lixenwraith/marquee/status"
)

// Options carries host-provided collaborators; zero values pick defaults
type Options struct {
	// CellPixels overrides the configured or default pixel width of a cell
	CellPixels float64
	// Player receives cycle and finish cues; nil is silent
	Player audio.Player
	// TimeProvider drives the animation clock; nil uses monotonic time
	TimeProvider clock.TimeProvider
	// Watcher overrides the resize watcher; nil uses the built-in one
	Watcher observer.Watcher
}

// Marquee scrolls one content unit across a screen row
type Marquee struct {
	screen tcell.Screen
	cfg    layout.Config
	grad   config.Gradient
	row    int

	viewport   *observer.ViewportBox
	contentBox *observer.ContentBox
	observer   *observer.Observer
	resize     *observer.ResizeWatcher
	watcher    observer.Watcher
	sub        *observer.Subscription

	animator     *animation.Animator
	orchestrator *render.Orchestrator
	gradient     *render.GradientRenderer
	statusLine   *render.StatusLineRenderer
	player       audio.Player

	measurement layout.Measurement
	measured    bool
	interaction layout.Interaction
	pressInside bool
	buttonDown  bool
	params      layout.Params
	hasParams   bool

	metrics *status.Registry
	m       metrics

	// OnCycleComplete is called with the number of completed traversals
	OnCycleComplete func(iteration int)
	// OnFinish is called once when the final configured loop completes
	OnFinish func()
}

// metrics caches registry pointers written on every recomputation
type metrics struct {
	multiplier   *atomic.Int64
	cycles       *atomic.Int64
	finishes     *atomic.Int64
	measurements *atomic.Int64
	duration     *status.AtomicFloat
	travel       *status.AtomicFloat
	container    *status.AtomicFloat
	contentPx    *status.AtomicFloat
	state        *status.AtomicString
	direction    *status.AtomicString
	source       *status.AtomicString
	hovered      *atomic.Bool
	clicked      *atomic.Bool
}

// New validates cfg and builds an unmounted marquee. Nothing is measured or
// computed until Mount; an invalid configuration is returned as an error.
func New(screen tcell.Screen, cfg *config.Config, unit *content.Unit, opts Options) (*Marquee, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cellPx := opts.CellPixels
	if cellPx <= 0 {
		cellPx = cfg.Terminal.CellWidth
	}
	if cellPx <= 0 {
		cellPx = parameter.DefaultCellPixels
	}

	var pc *clock.PausableClock
	if opts.TimeProvider != nil {
		pc = clock.NewPausableClockWith(opts.TimeProvider)
	} else {
		pc = clock.NewPausableClock()
	}

	player := opts.Player
	if player == nil {
		player = audio.Silent{}
	}

	mq := &Marquee{
		screen:       screen,
		cfg:          cfg.Marquee.Layout(),
		grad:         cfg.Gradient,
		row:          cfg.Terminal.Row,
		viewport:     observer.NewViewportBox(screen, cellPx),
		contentBox:   observer.NewContentBox(unit, cellPx),
		resize:       observer.NewResizeWatcher(),
		animator:     animation.New(pc),
		orchestrator: render.NewOrchestrator(screen),
		player:       player,
		metrics:      status.NewRegistry(),
	}
	mq.viewport.SetRegion(cfg.Terminal.X, cfg.Terminal.Width)
	mq.observer = observer.New(mq.viewport, mq.contentBox)

	mq.watcher = opts.Watcher
	if mq.watcher == nil {
		mq.watcher = mq.resize
	}

	mq.gradient = render.NewGradientRenderer(cfg.Gradient.Enabled, cfg.Gradient.RGB(), 0)
	mq.statusLine = render.NewStatusLineRenderer(cfg.Terminal.Status)
	mq.orchestrator.Register(render.NewBandRenderer(render.DefaultBandStyle), render.PriorityBand)
	mq.orchestrator.Register(mq.gradient, render.PriorityPostProcess)
	mq.orchestrator.Register(mq.statusLine, render.PriorityUI)

	mq.initMetrics()
	mq.animator.OnCycleComplete = mq.cycleComplete
	mq.animator.OnFinish = mq.finish

	return mq, nil
}

func (mq *Marquee) initMetrics() {
	r := mq.metrics
	mq.m = metrics{
		multiplier:   r.Ints.Get("mult"),
		cycles:       r.Ints.Get("cycles"),
		finishes:     r.Ints.Get("finished"),
		measurements: r.Ints.Get("measured"),
		duration:     r.Floats.Get("dur"),
		travel:       r.Floats.Get("travel"),
		container:    r.Floats.Get("box"),
		contentPx:    r.Floats.Get("content"),
		state:        r.Strings.Get("state"),
		direction:    r.Strings.Get("dir"),
		source:       r.Strings.Get("src"),
		hovered:      r.Bools.Get("hover"),
		clicked:      r.Bools.Get("click"),
	}
	mq.m.multiplier.Store(1)
	mq.m.state.Store("idle")
	mq.m.direction.Store(mq.cfg.Direction.String())
	mq.m.source.Store(sourceName(mq.contentBox.Unit()))
}

// Mount attaches both boxes, establishes the size watch and takes the first
// measurement. Mounting a mounted marquee is a no-op.
func (mq *Marquee) Mount() {
	if mq.Mounted() {
		return
	}
	mq.viewport.Attach()
	mq.contentBox.Attach()
	mq.sub = mq.observer.Observe(mq.watcher, mq.onMeasure)
	if mq.sub.Degraded() {
		log.Printf("Marquee measuring on mount and configuration change only")
	}
}

// Unmount releases the size watch and leaves the band at rest
func (mq *Marquee) Unmount() {
	if mq.sub == nil {
		return
	}
	mq.sub.Close()
	mq.viewport.Detach()
	mq.contentBox.Detach()
	mq.measured = false
	mq.interaction = layout.Interaction{}
	mq.pressInside = false
	mq.buttonDown = false
	mq.recompute()
}

// Mounted reports whether a live subscription exists
func (mq *Marquee) Mounted() bool {
	return mq.sub != nil && !mq.sub.Closed()
}

// onMeasure stores the latest measurement and recomputes
func (mq *Marquee) onMeasure(m layout.Measurement) {
	mq.measurement = m
	mq.measured = true
	mq.m.measurements.Add(1)
	mq.m.container.Store(m.ContainerWidth)
	mq.m.contentPx.Store(m.ContentWidth)
	mq.recompute()
}

// recompute derives parameters from the latest inputs only
func (mq *Marquee) recompute() {
	p, ok := layout.Resolve(mq.measurement, mq.measured, mq.cfg, mq.interaction)
	mq.params, mq.hasParams = p, ok

	mq.m.multiplier.Store(int64(p.Multiplier))
	mq.m.duration.Store(p.DurationSeconds)
	mq.m.travel.Store(p.TravelPx)
	mq.m.direction.Store(mq.cfg.Direction.String())
	mq.m.hovered.Store(mq.interaction.Hovered)
	mq.m.clicked.Store(mq.interaction.Clicked)

	mq.gradient.Cells = mq.gradientCells()

	if !ok {
		mq.animator.Stop()
		return
	}
	mq.animator.Apply(p)
}

func (mq *Marquee) gradientCells() int {
	if !mq.measured {
		return 0
	}
	px := mq.grad.Width.Pixels(mq.measurement.ContainerWidth)
	cells := int(math.Round(px / mq.viewport.CellPixels()))
	if cells < 0 {
		return 0
	}
	return cells
}

func (mq *Marquee) cycleComplete() {
	n := mq.m.cycles.Add(1)
	mq.player.PlayCycle()
	if mq.OnCycleComplete != nil {
		mq.OnCycleComplete(int(n))
	}
}

func (mq *Marquee) finish() {
	mq.m.finishes.Add(1)
	log.Printf("Marquee finished after %d loop(s)", mq.params.Iterations)
	mq.player.PlayFinish()
	if mq.OnFinish != nil {
		mq.OnFinish()
	}
}

// SetContent replaces the content and re-measures, even when the new unit
// has the same width as the old one
func (mq *Marquee) SetContent(unit *content.Unit) {
	mq.contentBox.SetUnit(unit)
	mq.m.source.Store(sourceName(unit))
	if mq.Mounted() {
		mq.sub.ContentChanged()
	}
}

// Content returns the current content unit
func (mq *Marquee) Content() *content.Unit {
	return mq.contentBox.Unit()
}

// SetConfig replaces the configuration wholesale. An invalid configuration
// is rejected and the previous one stays in effect.
func (mq *Marquee) SetConfig(cfg layout.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	mq.cfg = cfg
	if mq.Mounted() && mq.sub.Degraded() {
		mq.sub.Refresh()
	}
	mq.recompute()
	return nil
}

// Config returns the configuration in effect
func (mq *Marquee) Config() layout.Config {
	return mq.cfg
}

// Params returns the last computed parameters and whether they are active
func (mq *Marquee) Params() (layout.Params, bool) {
	return mq.params, mq.hasParams
}

// Multiplier returns the current number of copies per band, 1 when unmeasured
func (mq *Marquee) Multiplier() int {
	if !mq.hasParams {
		return 1
	}
	return mq.params.Multiplier
}

// Metrics returns the status registry
func (mq *Marquee) Metrics() *status.Registry {
	return mq.metrics
}

// Viewport returns the on-screen region of the container
func (mq *Marquee) Viewport() render.Viewport {
	_, height := mq.screen.Size()
	y := mq.row
	if y < 0 || y >= height {
		y = height / 2
	}
	return render.Viewport{
		X:     mq.viewport.X(),
		Y:     y,
		Width: mq.viewport.Cells(),
	}
}

func sourceName(unit *content.Unit) string {
	if src := unit.Source(); src != "" {
		return filepath.Base(src)
	}
	return "inline"
}
