package parameter

import "time"

// Audio Hardware Settings
const (
	// AudioSampleRate of the speaker output
	AudioSampleRate = 44100

	// AudioBufferDuration determines output latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cycle Cue
const (
	CycleCueFrequency = 880.0
	CycleCueDuration  = 60 * time.Millisecond
	CycleCueVolume    = -2.0 // base-2 exponent, -2 = quarter amplitude
)

// Finish Chime
const (
	FinishCueLowFrequency  = 660.0
	FinishCueHighFrequency = 990.0
	FinishCueNoteDuration  = 120 * time.Millisecond
	FinishCueGap           = 30 * time.Millisecond
	FinishCueVolume        = -1.5
)
