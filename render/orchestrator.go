package render

import "github.com/gdamore/tcell/v2"

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator runs registered renderers in priority order against a screen
type Orchestrator struct {
	screen    tcell.Screen
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing to screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	return &Orchestrator{
		screen:    screen,
		renderers: make([]rendererEntry, 0, 4),
	}
}

// Register adds a renderer at the specified priority, keeping sorted order
func (o *Orchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize forces a full redraw after the terminal changed size
func (o *Orchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame executes the pipeline: clear, render all visible, show
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.screen.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}
