package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBToTcell converts an 8-bit triple to tcell.Color
func RGBToTcell(rgb [3]uint8) tcell.Color {
	return tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2]))
}

// RGBToColorful converts an 8-bit triple to a colorful.Color
func RGBToColorful(rgb [3]uint8) colorful.Color {
	return colorful.Color{
		R: float64(rgb[0]) / 255,
		G: float64(rgb[1]) / 255,
		B: float64(rgb[2]) / 255,
	}
}

// TcellToColorful converts tcell.Color, using fallback for ColorDefault and
// other colours without an RGB value
func TcellToColorful(c tcell.Color, fallback colorful.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return fallback
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ColorfulToTcell converts colorful.Color to tcell.Color, clamping out-of-gamut values
func ColorfulToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
