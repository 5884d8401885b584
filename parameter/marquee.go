package parameter

import "time"

// Configuration Defaults
const (
	// DefaultSpeed is the scroll speed in pixels per second
	DefaultSpeed = 100.0

	// DefaultDelaySeconds before the first traversal starts
	DefaultDelaySeconds = 0.0

	// DefaultLoopCount of 0 loops forever
	DefaultLoopCount = 0

	// DefaultGradientWidthPx is the edge-fade width in pixels
	DefaultGradientWidthPx = 200.0
)

// DefaultGradientColor is the edge-fade colour (white)
var DefaultGradientColor = [3]uint8{255, 255, 255}

// Terminal Geometry
const (
	// DefaultCellPixels is used when the tty does not report its pixel size
	DefaultCellPixels = 8.0

	// MinCellPixels guards against bogus TIOCGWINSZ pixel reports
	MinCellPixels = 4.0

	// MaxCellPixels guards against bogus TIOCGWINSZ pixel reports
	MaxCellPixels = 64.0
)

// Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize buffers terminal events between pump and render loop
	EventQueueSize = 64

	// SpeedStep is the speed change per +/- keypress, in px/s
	SpeedStep = 25.0
)

// Content Loading
const (
	// ContentDir is the default directory scanned for .txt content files
	ContentDir = "./assets"

	// ContentSeparator joins lines of a content file into one unit
	ContentSeparator = "  •  "

	// DefaultContentText is shown when no content source is configured
	DefaultContentText = "marquee • seamless auto-fill scrolling • "
)
