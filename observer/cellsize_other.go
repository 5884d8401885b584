//go:build !unix

package observer

import "github.com/lixenwraith/marquee/parameter"

// CellPixels returns the default cell width where TIOCGWINSZ is unavailable
func CellPixels(fd int) float64 {
	return parameter.DefaultCellPixels
}
