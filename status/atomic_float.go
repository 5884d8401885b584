package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as its IEEE-754 bits.
// Zero value is ready to use (represents 0.0).
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store sets the value atomically
func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Load returns the value atomically
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add atomically adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
