// Package animation plays layout parameters over time: it turns a travel
// distance, duration, delay, iteration count, playback direction and play
// state into a per-frame band offset and cycle/finish notifications.
package animation

import (
	"math"
	"time"

	"github.com/lixenwraith/marquee/clock"
	"github.com/lixenwraith/marquee/layout"
)

// Frame is the animation state sampled at one tick
type Frame struct {
	Active    bool    // parameters applied
	Delaying  bool    // start delay still running
	Finished  bool    // final configured loop completed
	Iteration int     // completed traversals
	Progress  float64 // position within the current traversal, playback-adjusted
	OffsetPx  float64 // leftward shift of the bands, [0, TravelPx)
	TravelPx  float64
}

// Animator drives both bands with one shared set of timing parameters
type Animator struct {
	clock  *clock.PausableClock
	params layout.Params
	active bool

	completed int
	finished  bool

	// OnCycleComplete fires after every traversal except the final configured one
	OnCycleComplete func()
	// OnFinish fires once when the final configured traversal completes
	OnFinish func()
}

// New creates an idle animator on the given clock
func New(c *clock.PausableClock) *Animator {
	return &Animator{clock: c}
}

// Apply installs parameters.
// The first call starts the run. A change of iteration count or delay
// restarts it. A change of duration keeps the position within the current
// traversal so a resize does not make the band jump.
func (a *Animator) Apply(p layout.Params) {
	a.clock.SetPaused(p.State == layout.StatePaused)

	if !a.active || p.Iterations != a.params.Iterations || p.DelaySeconds != a.params.DelaySeconds {
		a.params = p
		a.active = true
		a.completed = 0
		a.finished = false
		a.clock.Reset()
		return
	}

	if !a.finished && p.DurationSeconds != a.params.DurationSeconds {
		delay := seconds(p.DelaySeconds)
		if elapsed := a.clock.Elapsed(); elapsed > delay {
			pos := (elapsed - delay).Seconds() / a.params.DurationSeconds
			progress := clampUnit(pos - float64(a.completed))
			run := (float64(a.completed) + progress) * p.DurationSeconds
			a.clock.Rebase(delay + seconds(run))
		}
	}
	a.params = p
}

// Stop drops the parameters; the band rests and no events fire
func (a *Animator) Stop() {
	a.active = false
	a.completed = 0
	a.finished = false
}

// Params returns the applied parameters and whether any are active
func (a *Animator) Params() (layout.Params, bool) {
	return a.params, a.active
}

// Tick samples the clock, fires crossed cycle boundaries and returns the frame
func (a *Animator) Tick() Frame {
	if !a.active {
		return Frame{}
	}

	f := Frame{
		Active:    true,
		Iteration: a.completed,
		TravelPx:  a.params.TravelPx,
	}
	if a.finished {
		f.Finished = true
		return f
	}

	delay := seconds(a.params.DelaySeconds)
	elapsed := a.clock.Elapsed()
	if elapsed < delay {
		f.Delaying = true
		return f
	}

	pos := (elapsed - delay).Seconds() / a.params.DurationSeconds
	reached := int(math.Floor(pos))

	for a.completed < reached {
		a.completed++
		if a.params.Iterations > 0 && a.completed >= a.params.Iterations {
			a.finished = true
			if a.OnFinish != nil {
				a.OnFinish()
			}
			f.Iteration = a.completed
			f.Finished = true
			return f
		}
		if a.OnCycleComplete != nil {
			a.OnCycleComplete()
		}
	}

	progress := clampUnit(pos - float64(reached))
	if a.params.Playback == layout.PlaybackReversed {
		progress = 1 - progress
	}

	f.Iteration = a.completed
	f.Progress = progress
	f.OffsetPx = math.Mod(progress*a.params.TravelPx, a.params.TravelPx)
	return f
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v >= 1:
		return math.Nextafter(1, 0)
	}
	return v
}
