//go:build unix

package observer

import (
	"golang.org/x/sys/unix"

	"github.com/lixenwraith/marquee/parameter"
)

// CellPixels returns the pixel width of one terminal cell on fd.
// Terminals that do not report pixel geometry fall back to the default.
func CellPixels(fd int) float64 {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Xpixel == 0 {
		return parameter.DefaultCellPixels
	}
	return clampCellPixels(float64(ws.Xpixel) / float64(ws.Col))
}
