package clock

import (
	"testing"
	"time"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPausableClockElapsed(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	pc := NewPausableClockWith(mock)

	if pc.Elapsed() != 0 {
		t.Fatalf("Expected zero elapsed at creation, got %v", pc.Elapsed())
	}

	mock.Advance(250 * time.Millisecond)
	if got := pc.Elapsed(); got != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", got)
	}
}

func TestPausableClockPauseFreezes(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	pc := NewPausableClockWith(mock)

	mock.Advance(1 * time.Second)
	pc.Pause()
	mock.Advance(5 * time.Second)

	if got := pc.Elapsed(); got != 1*time.Second {
		t.Errorf("Expected elapsed frozen at 1s, got %v", got)
	}
	if got := pc.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s paused, got %v", got)
	}

	pc.Resume()
	mock.Advance(500 * time.Millisecond)
	if got := pc.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s after resume, got %v", got)
	}
}

func TestPausableClockIdempotentToggles(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	pc := NewPausableClockWith(mock)

	pc.Resume() // running already
	mock.Advance(time.Second)
	pc.Pause()
	mock.Advance(time.Second)
	pc.Pause() // must not move the pause start
	mock.Advance(time.Second)
	pc.SetPaused(false)

	if got := pc.Elapsed(); got != time.Second {
		t.Errorf("Expected 1s elapsed, got %v", got)
	}
	if pc.IsPaused() {
		t.Error("Expected clock running")
	}
}

func TestPausableClockResetAndRebase(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)
	pc := NewPausableClockWith(mock)

	mock.Advance(3 * time.Second)
	pc.Reset()
	if got := pc.Elapsed(); got != 0 {
		t.Errorf("Expected 0 after reset, got %v", got)
	}

	pc.Rebase(2 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected 2s after rebase, got %v", got)
	}

	pc.Pause()
	pc.Rebase(700 * time.Millisecond)
	mock.Advance(time.Second)
	if got := pc.Elapsed(); got != 700*time.Millisecond {
		t.Errorf("Expected rebase to hold while paused, got %v", got)
	}
}

func TestMockTimeProvider(t *testing.T) {
	mock := NewMockTimeProvider(testEpoch)

	mock.Advance(time.Hour)
	if got := mock.Now(); !got.Equal(testEpoch.Add(time.Hour)) {
		t.Errorf("Expected %v, got %v", testEpoch.Add(time.Hour), got)
	}

	later := testEpoch.Add(48 * time.Hour)
	mock.SetTime(later)
	if got := mock.Now(); !got.Equal(later) {
		t.Errorf("Expected %v, got %v", later, got)
	}
}
