// Package status holds lock-free runtime metrics that the marquee writes on
// every recomputation and the debug status line reads every frame.
package status

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade.
// Writers cache metric pointers once and store to the atomics directly.
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Format renders every metric as sorted key=value pairs, grouped by type
func (r *Registry) Format() string {
	var parts []string

	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, key+"="+v.Load())
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, key+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, key+"="+strconv.FormatFloat(v.Load(), 'f', 2, 64))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		parts = append(parts, key+"="+strconv.FormatBool(v.Load()))
	})

	return strings.Join(parts, " ")
}
