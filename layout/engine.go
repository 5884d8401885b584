package layout

import "math"

// maxMultiplier bounds the int conversion for degenerate sub-pixel content
const maxMultiplier = math.MaxInt32

// Measurement is a post-mount snapshot of rendered widths in pixels
type Measurement struct {
	ContainerWidth float64
	ContentWidth   float64
}

// Result is the derived layout for one Measurement + Config pair
type Result struct {
	Multiplier      int
	DurationSeconds float64
}

// Multiplier returns the number of content copies per band, always >= 1
func Multiplier(m Measurement, autoFill bool) int {
	if !autoFill {
		return 1
	}
	// Unknown or zero widths: safe default until the next measurement
	if !(m.ContentWidth > 0) || !(m.ContainerWidth > 0) {
		return 1
	}
	if m.ContentWidth >= m.ContainerWidth {
		return 1
	}

	copies := math.Ceil(m.ContainerWidth / m.ContentWidth)
	if copies > maxMultiplier {
		return maxMultiplier
	}
	return int(copies)
}

// BandWidth is the travel distance of one band in pixels.
// Once measured, a band is never narrower than the container, which is what
// keeps two bands offset by one band width gap-free.
func BandWidth(m Measurement, multiplier int, autoFill bool) float64 {
	if autoFill {
		return m.ContentWidth * float64(multiplier)
	}
	return math.Max(m.ContainerWidth, m.ContentWidth)
}

// Duration is the time in seconds to traverse one band at speed px/s.
// Speed must already be validated positive.
func Duration(m Measurement, multiplier int, autoFill bool, speed float64) float64 {
	return BandWidth(m, multiplier, autoFill) / speed
}

// Compute derives the layout; identical inputs always yield identical output
func Compute(m Measurement, cfg Config) Result {
	multiplier := Multiplier(m, cfg.AutoFill)
	return Result{
		Multiplier:      multiplier,
		DurationSeconds: Duration(m, multiplier, cfg.AutoFill, cfg.Speed),
	}
}
