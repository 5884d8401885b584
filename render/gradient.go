package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// GradientRenderer fades both viewport edges toward a solid colour
type GradientRenderer struct {
	Enabled bool
	Color   [3]uint8
	// Cells is the fade width per edge; the fade never exceeds half the viewport
	Cells int
	// Fallback is used for cells whose colours are terminal defaults
	Fallback colorful.Color
}

// NewGradientRenderer creates a gradient overlay, disabled when enabled is false
func NewGradientRenderer(enabled bool, color [3]uint8, cells int) *GradientRenderer {
	return &GradientRenderer{
		Enabled:  enabled,
		Color:    color,
		Cells:    cells,
		Fallback: TcellToColorful(RgbForeground, colorful.Color{R: 1, G: 1, B: 1}),
	}
}

// IsVisible implements VisibilityToggle
func (g *GradientRenderer) IsVisible() bool {
	return g.Enabled && g.Cells > 0
}

// Render implements SystemRenderer
func (g *GradientRenderer) Render(ctx Context, screen tcell.Screen) {
	vp := ctx.Viewport
	width := g.Cells
	if half := vp.Width / 2; width > half {
		width = half
	}
	if width <= 0 {
		return
	}

	edge := RGBToColorful(g.Color)
	for i := 0; i < width; i++ {
		t := Weight(i, width)
		g.fadeCell(screen, vp.X+i, vp.Y, edge, t)
		g.fadeCell(screen, vp.X+vp.Width-1-i, vp.Y, edge, t)
	}
}

func (g *GradientRenderer) fadeCell(screen tcell.Screen, x, y int, edge colorful.Color, t float64) {
	mainc, combc, style, _ := screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()

	fgBlend := edge.BlendLab(TcellToColorful(fg, g.Fallback), t)
	bgBlend := edge.BlendLab(TcellToColorful(bg, edge), t)

	style = style.Foreground(ColorfulToTcell(fgBlend)).Background(ColorfulToTcell(bgBlend))
	screen.SetContent(x, y, mainc, combc, style)
}

// Weight returns the original-colour weight at column i of a fade of width w;
// it grows from the edge inward
func Weight(i, w int) float64 {
	if w <= 0 {
		return 1
	}
	return (float64(i) + 0.5) / float64(w)
}
