package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/content"
)

// BandFrame describes both bands for one frame, in cells
type BandFrame struct {
	Unit       *content.Unit
	Multiplier int // copies per band
	BandCells  int // width of one band; 0 renders a single static copy
	Offset     int // leftward shift, [0, BandCells)
}

// BandCells converts a pixel travel distance into whole cells
func BandCells(travelPx, cellPx float64) int {
	if !(travelPx > 0) || !(cellPx > 0) {
		return 0
	}
	return int(math.Round(travelPx / cellPx))
}

// OffsetCells converts a pixel offset into a cell offset within [0, bandCells)
func OffsetCells(offsetPx, cellPx float64, bandCells int) int {
	if bandCells <= 0 || !(cellPx > 0) {
		return 0
	}
	off := int(math.Floor(offsetPx/cellPx)) % bandCells
	if off < 0 {
		off += bandCells
	}
	return off
}

// BandRenderer draws two identical bands, the second one band width behind
// the first, so content leaving one edge is already queued at the other
type BandRenderer struct {
	Style tcell.Style
}

// NewBandRenderer creates a band renderer with the given cell style
func NewBandRenderer(style tcell.Style) *BandRenderer {
	return &BandRenderer{Style: style}
}

// Render implements SystemRenderer
func (r *BandRenderer) Render(ctx Context, screen tcell.Screen) {
	vp := ctx.Viewport
	if vp.Width <= 0 {
		return
	}

	for x := 0; x < vp.Width; x++ {
		screen.SetContent(vp.X+x, vp.Y, ' ', nil, r.Style)
	}

	f := ctx.Band
	if f.Unit.Empty() {
		return
	}

	// Unmeasured or nothing to animate: one copy at rest
	if f.BandCells <= 0 {
		r.drawCopy(screen, vp, 0, f.Unit)
		return
	}

	multiplier := f.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	unitCells := f.Unit.Width()

	for band := 0; band < 2; band++ {
		start := band*f.BandCells - f.Offset
		if start >= vp.Width {
			break
		}
		for c := 0; c < multiplier; c++ {
			col := start + c*unitCells
			if col >= vp.Width {
				break
			}
			if col+unitCells <= 0 {
				continue
			}
			r.drawCopy(screen, vp, col, f.Unit)
		}
	}
}

// drawCopy draws one content unit starting at viewport column col.
// Clusters that would be cut by either edge are left blank.
func (r *BandRenderer) drawCopy(screen tcell.Screen, vp Viewport, col int, unit *content.Unit) {
	for _, cl := range unit.Clusters() {
		w := cl.Width
		if w > 0 && col >= 0 && col+w <= vp.Width && len(cl.Runes) > 0 {
			screen.SetContent(vp.X+col, vp.Y, cl.Runes[0], cl.Runes[1:], r.Style)
		}
		col += w
		if col >= vp.Width {
			return
		}
	}
}
