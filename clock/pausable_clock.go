package clock

import (
	"sync"
	"time"
)

// PausableClock measures animation time that stands still while paused
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	epoch           time.Time     // Real time at creation or last Reset
	paused          bool
	pauseStart      time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative pause duration since epoch
}

// NewPausableClock creates a running clock backed by the monotonic system time
func NewPausableClock() *PausableClock {
	return NewPausableClockWith(NewMonotonicTimeProvider())
}

// NewPausableClockWith creates a running clock backed by the given source
func NewPausableClockWith(source TimeProvider) *PausableClock {
	return &PausableClock{
		source: source,
		epoch:  source.Now(),
	}
}

// Elapsed returns animation time since epoch, excluding paused spans
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		// Frozen at the pause point
		return pc.pauseStart.Sub(pc.epoch) - pc.totalPausedTime
	}
	return pc.source.Now().Sub(pc.epoch) - pc.totalPausedTime
}

// Pause stops time advancement, no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues time advancement, no-op if running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.paused = false
}

// SetPaused pauses or resumes to match the requested state
func (pc *PausableClock) SetPaused(paused bool) {
	if paused {
		pc.Pause()
	} else {
		pc.Resume()
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// Reset restarts elapsed time at zero, keeping the pause state
func (pc *PausableClock) Reset() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.source.Now()
	pc.epoch = now
	pc.totalPausedTime = 0
	if pc.paused {
		pc.pauseStart = now
	}
}

// Rebase shifts the epoch so Elapsed reports the given value from now on
func (pc *PausableClock) Rebase(elapsed time.Duration) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.source.Now()
	pc.epoch = now.Add(-elapsed)
	pc.totalPausedTime = 0
	if pc.paused {
		pc.pauseStart = now
	}
}

// TotalPauseDuration returns cumulative pause time since epoch
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
