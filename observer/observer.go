package observer

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/marquee/layout"
)

var (
	ErrUnavailable      = errors.New("measurement unavailable: target not attached")
	ErrWatchUnsupported = errors.New("box-size watch unsupported")
)

// Box is a measurable element in the rendered tree
type Box interface {
	// Width returns the rendered width in pixels and whether the element is attached
	Width() (px float64, attached bool)
}

// Watcher is a push-based box-size watch provided by the host
type Watcher interface {
	// Watch registers fn for size-change notifications and returns its release function
	Watch(fn func()) (cancel func(), err error)
}

// Observer measures a container/content pair
type Observer struct {
	container Box
	content   Box
}

// New creates an observer over the viewport and one content unit
func New(container, content Box) *Observer {
	return &Observer{container: container, content: content}
}

// Measure returns the current widths, ErrUnavailable if either box is detached
func (o *Observer) Measure() (layout.Measurement, error) {
	containerPx, ok := o.container.Width()
	if !ok {
		return layout.Measurement{}, ErrUnavailable
	}
	contentPx, ok := o.content.Width()
	if !ok {
		return layout.Measurement{}, ErrUnavailable
	}
	return layout.Measurement{ContainerWidth: containerPx, ContentWidth: contentPx}, nil
}

// Observe establishes the watch and emits the first measurement if available.
// A nil watcher, or one that fails to attach, degrades to measuring only on
// mount and on explicit Refresh/ContentChanged calls.
func (o *Observer) Observe(w Watcher, emit func(layout.Measurement)) *Subscription {
	s := &Subscription{
		observer: o,
		emit:     emit,
	}

	if w == nil {
		s.degraded = true
	} else if cancel, err := w.Watch(s.notify); err != nil {
		log.Printf("Box-size watch unavailable, measuring on mount only: %v", err)
		s.degraded = true
	} else {
		s.cancel = cancel
	}

	s.notify()
	return s
}

// Subscription is a live watch on the observed boxes
type Subscription struct {
	observer *Observer
	emit     func(layout.Measurement)
	cancel   func()
	degraded bool

	closed    atomic.Bool
	closeOnce sync.Once
	emitted   atomic.Int64
}

// notify re-measures and emits; unavailable measurements are swallowed so
// the consumer keeps its previous safe state
func (s *Subscription) notify() {
	if s.closed.Load() {
		return
	}
	m, err := s.observer.Measure()
	if err != nil {
		return
	}
	s.emitted.Add(1)
	if s.emit != nil {
		s.emit(m)
	}
}

// Refresh re-measures after a mount-triggering configuration change
func (s *Subscription) Refresh() {
	s.notify()
}

// ContentChanged re-measures after the content was replaced, even if the
// new content happens to have the same width
func (s *Subscription) ContentChanged() {
	s.notify()
}

// Degraded reports whether no live watch is attached
func (s *Subscription) Degraded() bool {
	return s.degraded
}

// Emitted returns how many measurements were delivered
func (s *Subscription) Emitted() int64 {
	return s.emitted.Load()
}

// Closed reports whether the watch has been released
func (s *Subscription) Closed() bool {
	return s.closed.Load()
}

// Close releases the watch. Safe to call multiple times; the release
// function runs exactly once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.cancel != nil {
			s.cancel()
		}
	})
}
