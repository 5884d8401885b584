package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusLineRenderer draws the debug metrics line under the viewport
type StatusLineRenderer struct {
	Visible bool
	Style   tcell.Style
}

// NewStatusLineRenderer creates a status line, hidden unless visible is set
func NewStatusLineRenderer(visible bool) *StatusLineRenderer {
	return &StatusLineRenderer{Visible: visible, Style: DefaultStatusStyle}
}

// IsVisible implements VisibilityToggle
func (s *StatusLineRenderer) IsVisible() bool {
	return s.Visible
}

// Render implements SystemRenderer
func (s *StatusLineRenderer) Render(ctx Context, screen tcell.Screen) {
	width, height := screen.Size()
	y := ctx.Viewport.Y + 1
	if y >= height {
		y = ctx.Viewport.Y - 1
	}
	if y < 0 || width <= 0 {
		return
	}

	text := runewidth.Truncate(ctx.Status, width, "…")
	x := 0
	for _, r := range text {
		screen.SetContent(x, y, r, nil, s.Style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, s.Style)
	}
}
