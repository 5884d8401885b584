package observer

import (
	"errors"
	"testing"

	"github.com/lixenwraith/marquee/layout"
)

type fakeBox struct {
	px       float64
	attached bool
}

func (b *fakeBox) Width() (float64, bool) { return b.px, b.attached }

type failingWatcher struct{}

func (failingWatcher) Watch(func()) (func(), error) { return nil, ErrWatchUnsupported }

type countingWatcher struct {
	fn       func()
	released int
}

func (w *countingWatcher) Watch(fn func()) (func(), error) {
	w.fn = fn
	return func() { w.released++ }, nil
}

func (w *countingWatcher) fire() {
	if w.fn != nil {
		w.fn()
	}
}

func TestMeasureUnavailableBeforeMount(t *testing.T) {
	container := &fakeBox{px: 1000}
	content := &fakeBox{px: 300}
	o := New(container, content)

	if _, err := o.Measure(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable before mount, got %v", err)
	}

	container.attached = true
	if _, err := o.Measure(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable with content detached, got %v", err)
	}

	content.attached = true
	m, err := o.Measure()
	if err != nil {
		t.Fatalf("Expected measurement after mount, got %v", err)
	}
	if m != (layout.Measurement{ContainerWidth: 1000, ContentWidth: 300}) {
		t.Errorf("Unexpected measurement %+v", m)
	}
}

func TestObserveEmitsOnMountAndChange(t *testing.T) {
	container := &fakeBox{px: 1000, attached: true}
	content := &fakeBox{px: 300, attached: true}
	w := &countingWatcher{}

	var got []layout.Measurement
	sub := New(container, content).Observe(w, func(m layout.Measurement) {
		got = append(got, m)
	})
	defer sub.Close()

	if len(got) != 1 {
		t.Fatalf("Expected initial mount measurement, got %d", len(got))
	}
	if sub.Degraded() {
		t.Error("Expected live watch")
	}

	container.px = 640
	w.fire()
	if len(got) != 2 || got[1].ContainerWidth != 640 {
		t.Fatalf("Expected resize measurement 640, got %+v", got)
	}

	// Same width, different content: still re-emitted
	sub.ContentChanged()
	if len(got) != 3 {
		t.Errorf("Expected content change to emit, got %d emissions", len(got))
	}
	if sub.Emitted() != 3 {
		t.Errorf("Expected emitted counter 3, got %d", sub.Emitted())
	}
}

func TestObserveSkipsUnavailable(t *testing.T) {
	container := &fakeBox{px: 1000}
	content := &fakeBox{px: 300, attached: true}
	w := &countingWatcher{}

	calls := 0
	sub := New(container, content).Observe(w, func(layout.Measurement) { calls++ })
	defer sub.Close()

	if calls != 0 {
		t.Fatalf("Expected no emission before the container is attached, got %d", calls)
	}

	container.attached = true
	w.fire()
	if calls != 1 {
		t.Errorf("Expected first emission after attach, got %d", calls)
	}
}

func TestCloseReleasesExactlyOnce(t *testing.T) {
	container := &fakeBox{px: 100, attached: true}
	content := &fakeBox{px: 10, attached: true}
	w := &countingWatcher{}

	calls := 0
	sub := New(container, content).Observe(w, func(layout.Measurement) { calls++ })

	sub.Close()
	sub.Close()
	sub.Close()

	if w.released != 1 {
		t.Errorf("Expected watch released once, got %d", w.released)
	}
	if !sub.Closed() {
		t.Error("Expected subscription closed")
	}

	w.fire()
	sub.Refresh()
	if calls != 1 {
		t.Errorf("Expected no emissions after close, got %d total", calls)
	}
}

func TestObserveDegradesWithoutWatch(t *testing.T) {
	container := &fakeBox{px: 800, attached: true}
	content := &fakeBox{px: 200, attached: true}

	for name, w := range map[string]Watcher{"nil": nil, "failing": failingWatcher{}} {
		t.Run(name, func(t *testing.T) {
			calls := 0
			sub := New(container, content).Observe(w, func(layout.Measurement) { calls++ })
			defer sub.Close()

			if !sub.Degraded() {
				t.Error("Expected degraded subscription")
			}
			if calls != 1 {
				t.Errorf("Expected mount measurement in degraded mode, got %d", calls)
			}

			sub.Refresh()
			if calls != 2 {
				t.Errorf("Expected refresh to re-measure, got %d", calls)
			}
		})
	}
}
