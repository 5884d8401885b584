package render

import "github.com/gdamore/tcell/v2"

// Palette (Tokyo Night)
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbForeground = tcell.NewRGBColor(192, 202, 245)
	RgbStatusFg   = tcell.NewRGBColor(180, 180, 180)
	RgbStatusBg   = tcell.NewRGBColor(36, 40, 59)
)

// DefaultBandStyle is used for content cells and band padding
var DefaultBandStyle = tcell.StyleDefault.Foreground(RgbForeground).Background(RgbBackground)

// DefaultStatusStyle is used for the debug status line
var DefaultStatusStyle = tcell.StyleDefault.Foreground(RgbStatusFg).Background(RgbStatusBg)
