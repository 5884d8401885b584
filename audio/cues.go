package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/marquee/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)

	cueAttack  = 5 * time.Millisecond
	cueRelease = 20 * time.Millisecond
)

// envelope applies a linear attack/release to a finite streamer to avoid clicks
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, length, attack, release time.Duration) *envelope {
	return &envelope{
		s:       beep.Take(sr.N(length), s),
		total:   sr.N(length),
		attack:  sr.N(attack),
		release: sr.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			gain = min(gain, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.s.Err()
}

// tone builds one enveloped sine note at the given base-2 volume
func tone(sr beep.SampleRate, freq float64, length time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: newEnvelope(sine, sr, length, cueAttack, cueRelease),
		Base:     2,
		Volume:   volume,
	}, nil
}

// NewCycleCue creates the short blip played after each completed traversal
func NewCycleCue(sr beep.SampleRate) (beep.Streamer, error) {
	return tone(sr, parameter.CycleCueFrequency, parameter.CycleCueDuration, parameter.CycleCueVolume)
}

// NewFinishCue creates the rising two-note chime played when the last loop ends
func NewFinishCue(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := tone(sr, parameter.FinishCueLowFrequency, parameter.FinishCueNoteDuration, parameter.FinishCueVolume)
	if err != nil {
		return nil, err
	}
	high, err := tone(sr, parameter.FinishCueHighFrequency, parameter.FinishCueNoteDuration, parameter.FinishCueVolume)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, beep.Silence(sr.N(parameter.FinishCueGap)), high), nil
}
