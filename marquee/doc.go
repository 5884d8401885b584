// Package marquee is the scrolling component: it owns the viewport and
// content boxes, listens for size changes, recomputes layout parameters from
// the latest measurement and configuration, and draws the two bands every
// frame.
//
// A Marquee is not safe for concurrent use. The host calls HandleEvent and
// Draw from one goroutine, normally the render loop.
package marquee
