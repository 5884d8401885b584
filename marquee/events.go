package marquee

import "github.com/gdamore/tcell/v2"

// HandleEvent applies terminal events to the marquee and reports whether the
// event was consumed. Resizes are always consumed, mouse events only when
// they change the interaction state.
func (mq *Marquee) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		mq.orchestrator.Resize()
		mq.resize.Notify()
		return true

	case *tcell.EventMouse:
		return mq.handleMouse(ev)
	}
	return false
}

// handleMouse derives hover from the pointer position and click from a
// primary button held since a press inside the viewport
func (mq *Marquee) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	inside := mq.Viewport().Contains(x, y)
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case !held:
		mq.pressInside = false
	case !mq.buttonDown:
		mq.pressInside = inside
	}
	mq.buttonDown = held

	next := mq.interaction
	next.Hovered = inside
	next.Clicked = held && mq.pressInside

	if next == mq.interaction {
		return false
	}
	mq.interaction = next
	mq.recompute()
	return true
}
