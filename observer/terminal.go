package observer

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/content"
)

// ResizeWatcher fans terminal resize notifications out to watch callbacks.
// The host calls Notify from the UI goroutine on every tcell resize event.
type ResizeWatcher struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func()
}

// NewResizeWatcher creates a watcher with no registrations
func NewResizeWatcher() *ResizeWatcher {
	return &ResizeWatcher{handlers: make(map[int]func())}
}

// Watch registers fn; the returned cancel removes it
func (w *ResizeWatcher) Watch(fn func()) (func(), error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.handlers[id] = fn

	return func() {
		w.mu.Lock()
		delete(w.handlers, id)
		w.mu.Unlock()
	}, nil
}

// Notify invokes every registered callback outside the lock
func (w *ResizeWatcher) Notify() {
	w.mu.Lock()
	fns := make([]func(), 0, len(w.handlers))
	for _, fn := range w.handlers {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of live registrations
func (w *ResizeWatcher) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.handlers)
}

// ViewportBox is a horizontal screen region acting as the marquee container
type ViewportBox struct {
	screen   tcell.Screen
	x        int
	width    int // 0 extends to the right screen edge
	cellPx   float64
	attached bool
}

// NewViewportBox creates a detached viewport spanning the full screen width
func NewViewportBox(screen tcell.Screen, cellPx float64) *ViewportBox {
	return &ViewportBox{screen: screen, cellPx: cellPx}
}

// SetRegion positions the viewport; width 0 extends to the screen edge
func (v *ViewportBox) SetRegion(x, width int) {
	if x < 0 {
		x = 0
	}
	if width < 0 {
		width = 0
	}
	v.x = x
	v.width = width
}

// Attach marks the viewport as mounted
func (v *ViewportBox) Attach() { v.attached = true }

// Detach marks the viewport as removed
func (v *ViewportBox) Detach() { v.attached = false }

// X returns the left column of the viewport
func (v *ViewportBox) X() int { return v.x }

// Cells returns the visible width in terminal cells, clipped to the screen
func (v *ViewportBox) Cells() int {
	if v.screen == nil {
		return 0
	}
	screenW, _ := v.screen.Size()
	avail := screenW - v.x
	if avail < 0 {
		avail = 0
	}
	if v.width > 0 && v.width < avail {
		return v.width
	}
	return avail
}

// CellPixels returns the pixel width of one cell
func (v *ViewportBox) CellPixels() float64 { return v.cellPx }

// Width implements Box
func (v *ViewportBox) Width() (float64, bool) {
	if !v.attached || v.screen == nil {
		return 0, false
	}
	return float64(v.Cells()) * v.cellPx, true
}

// ContentBox is the rendered extent of one content unit
type ContentBox struct {
	unit     *content.Unit
	cellPx   float64
	attached bool
}

// NewContentBox creates a detached box for unit
func NewContentBox(unit *content.Unit, cellPx float64) *ContentBox {
	return &ContentBox{unit: unit, cellPx: cellPx}
}

// SetUnit replaces the content; the caller is expected to re-measure
func (c *ContentBox) SetUnit(unit *content.Unit) { c.unit = unit }

// Unit returns the current content unit
func (c *ContentBox) Unit() *content.Unit { return c.unit }

// Attach marks the content as rendered
func (c *ContentBox) Attach() { c.attached = true }

// Detach marks the content as removed
func (c *ContentBox) Detach() { c.attached = false }

// Width implements Box
func (c *ContentBox) Width() (float64, bool) {
	if !c.attached || c.unit == nil {
		return 0, false
	}
	return float64(c.unit.Width()) * c.cellPx, true
}
