package observer

import "github.com/lixenwraith/marquee/parameter"

func clampCellPixels(px float64) float64 {
	if px < parameter.MinCellPixels || px > parameter.MaxCellPixels {
		return parameter.DefaultCellPixels
	}
	return px
}
