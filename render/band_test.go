package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/marquee/content"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText reads one row from the back buffer
func rowText(screen tcell.Screen, y, x0, width int) []rune {
	out := make([]rune, width)
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x0+x, y)
		if mainc == 0 {
			mainc = ' '
		}
		out[x] = mainc
	}
	return out
}

func renderBand(screen tcell.Screen, vp Viewport, f BandFrame) {
	screen.Clear()
	NewBandRenderer(DefaultBandStyle).Render(Context{Viewport: vp, Band: f}, screen)
}

// TestBandSeamlessAutoFill checks that no offset ever exposes a blank cell
func TestBandSeamlessAutoFill(t *testing.T) {
	screen := newSimScreen(t, 20, 3)
	unit := content.NewUnit("abc")
	vp := Viewport{X: 2, Y: 1, Width: 10}

	// ceil(10/3) = 4 copies, 12-cell band
	f := BandFrame{Unit: unit, Multiplier: 4, BandCells: 12}
	for off := 0; off < f.BandCells; off++ {
		f.Offset = off
		renderBand(screen, vp, f)

		row := rowText(screen, vp.Y, vp.X, vp.Width)
		for x, r := range row {
			want := rune("abc"[(x+off)%3])
			if r != want {
				t.Fatalf("offset=%d col=%d: expected %q, got %q (row %q)", off, x, want, r, string(row))
			}
		}
	}
}

// TestBandStaticSingleCopy draws one resting copy when unmeasured
func TestBandStaticSingleCopy(t *testing.T) {
	screen := newSimScreen(t, 10, 1)
	renderBand(screen, Viewport{Width: 10}, BandFrame{Unit: content.NewUnit("abc"), Multiplier: 1})

	if got := string(rowText(screen, 0, 0, 10)); got != "abc       " {
		t.Errorf("Expected single static copy, got %q", got)
	}
}

// TestBandPaddedWithoutAutoFill pads a narrow unit to the viewport width
func TestBandPaddedWithoutAutoFill(t *testing.T) {
	screen := newSimScreen(t, 10, 1)
	vp := Viewport{Width: 10}
	f := BandFrame{Unit: content.NewUnit("abc"), Multiplier: 1, BandCells: 10}

	renderBand(screen, vp, f)
	if got := string(rowText(screen, 0, 0, 10)); got != "abc       " {
		t.Errorf("offset 0: got %q", got)
	}

	f.Offset = 8
	renderBand(screen, vp, f)
	if got := string(rowText(screen, 0, 0, 10)); got != "  abc     " {
		t.Errorf("offset 8: got %q", got)
	}
}

// TestBandWideClustersClipped leaves edge-cut wide clusters blank
func TestBandWideClustersClipped(t *testing.T) {
	screen := newSimScreen(t, 5, 1)
	f := BandFrame{Unit: content.NewUnit("日本"), Multiplier: 2, BandCells: 8, Offset: 1}
	renderBand(screen, Viewport{Width: 5}, f)

	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("Expected clipped cluster to leave col 0 blank, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(1, 0); r != '本' {
		t.Errorf("Expected '本' at col 1, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(3, 0); r != '日' {
		t.Errorf("Expected '日' at col 3, got %q", r)
	}
}

func TestBandEmptyUnit(t *testing.T) {
	screen := newSimScreen(t, 6, 1)
	renderBand(screen, Viewport{Width: 6}, BandFrame{Unit: content.NewUnit(""), Multiplier: 1, BandCells: 6})
	if got := string(rowText(screen, 0, 0, 6)); got != "      " {
		t.Errorf("Expected blank viewport, got %q", got)
	}
}

func TestCellConversions(t *testing.T) {
	if got := BandCells(1200, 8); got != 150 {
		t.Errorf("Expected 150 cells, got %d", got)
	}
	if got := BandCells(0, 8); got != 0 {
		t.Errorf("Expected 0 cells for no travel, got %d", got)
	}
	if got := OffsetCells(15.9, 8, 150); got != 1 {
		t.Errorf("Expected floor to 1, got %d", got)
	}
	if got := OffsetCells(1200, 8, 150); got != 0 {
		t.Errorf("Expected wrap to 0, got %d", got)
	}
	if got := OffsetCells(-8, 8, 150); got != 149 {
		t.Errorf("Expected negative offset to wrap to 149, got %d", got)
	}
}
