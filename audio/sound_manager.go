// Package audio plays optional cues for marquee cycle and finish events.
package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/marquee/parameter"
)

// Player receives marquee notifications as sound
type Player interface {
	PlayCycle()
	PlayFinish()
	Cleanup()
}

// Silent is the Player used when sound is disabled or unavailable
type Silent struct{}

func (Silent) PlayCycle()  {}
func (Silent) PlayFinish() {}
func (Silent) Cleanup()    {}

// SoundManager plays cues through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// NewPlayer returns a speaker-backed player, or Silent when disabled or when
// the audio device cannot be opened
func NewPlayer(enabled bool) Player {
	if !enabled {
		return Silent{}
	}
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return Silent{}
	}
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayCycle plays the cycle-complete blip
func (sm *SoundManager) PlayCycle() {
	sm.play(NewCycleCue)
}

// PlayFinish plays the finish chime
func (sm *SoundManager) PlayFinish() {
	sm.play(NewFinishCue)
}

func (sm *SoundManager) play(build func(beep.SampleRate) (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	cue, err := build(sampleRate)
	if err != nil {
		log.Printf("Audio cue failed: %v", err)
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
}
