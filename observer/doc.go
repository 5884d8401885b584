// Package observer measures the viewport and one content unit and pushes a
// fresh measurement whenever either may have changed.
//
// Measurements are only produced while both targets are attached. Before
// that, Measure reports ErrUnavailable rather than a zero measurement. The
// box-size watch is an explicit Subscription that must be closed; Close
// releases the watch exactly once.
package observer
