package marquee

import (
	"github.com/lixenwraith/marquee/animation"
	"github.com/lixenwraith/marquee/layout"
	"github.com/lixenwraith/marquee/render"
)

// Draw advances the animation and renders one frame
func (mq *Marquee) Draw() animation.Frame {
	f := mq.animator.Tick()
	mq.m.state.Store(stateName(f, mq.hasParams && mq.params.State == layout.StatePaused))

	ctx := render.Context{
		Viewport: mq.Viewport(),
		Band:     mq.bandFrame(f),
	}
	if mq.statusLine.IsVisible() {
		ctx.Status = mq.metrics.Format()
	}

	mq.orchestrator.RenderFrame(ctx)
	return f
}

// bandFrame converts the pixel-space frame into cells for the renderers.
// Without parameters the content rests as a single copy.
func (mq *Marquee) bandFrame(f animation.Frame) render.BandFrame {
	bf := render.BandFrame{
		Unit:       mq.contentBox.Unit(),
		Multiplier: 1,
	}
	if !mq.hasParams || !f.Active {
		return bf
	}

	cellPx := mq.viewport.CellPixels()
	bf.Multiplier = mq.params.Multiplier
	bf.BandCells = render.BandCells(mq.params.TravelPx, cellPx)
	bf.Offset = render.OffsetCells(f.OffsetPx, cellPx, bf.BandCells)
	return bf
}

func stateName(f animation.Frame, paused bool) string {
	switch {
	case !f.Active:
		return "idle"
	case f.Finished:
		return "finished"
	case paused:
		return "paused"
	case f.Delaying:
		return "delay"
	}
	return "running"
}
