package render

import "github.com/gdamore/tcell/v2"

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx Context, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// Viewport is the marquee container region in cells
type Viewport struct {
	X, Y  int
	Width int
}

// Contains reports whether a cell lies inside the viewport
func (v Viewport) Contains(x, y int) bool {
	return y == v.Y && x >= v.X && x < v.X+v.Width
}

// Context is the per-frame input shared by all renderers
type Context struct {
	Viewport Viewport
	Band     BandFrame
	Status   string // debug status text, drawn below the viewport when visible
}
