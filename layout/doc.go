// Package layout computes how many content copies a marquee band needs and
// how long one traversal of that band takes.
//
// Everything here is a pure function of the latest Measurement and Config:
//   - Multiplier: copies per band so the band is never narrower than the viewport
//   - Duration: traversal time derived from a px/s speed, not a fixed duration
//   - Resolve: the full parameter set consumed by the animation mechanism
//
// No state is retained between calls. Callers recompute on every measurement
// or configuration change.
package layout
