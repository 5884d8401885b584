package layout

// Playback maps Direction onto the animation mechanism
type Playback uint8

const (
	PlaybackNormal Playback = iota
	PlaybackReversed
)

func (p Playback) String() string {
	if p == PlaybackReversed {
		return "reverse"
	}
	return "normal"
}

// PlayState of the animation mechanism
type PlayState uint8

const (
	StateRunning PlayState = iota
	StatePaused
)

func (s PlayState) String() string {
	if s == StatePaused {
		return "paused"
	}
	return "running"
}

// Interaction is the pointer state over the viewport
type Interaction struct {
	Hovered bool
	Clicked bool
}

// Params is the complete parameter set handed to the animation mechanism
type Params struct {
	Multiplier      int
	TravelPx        float64
	DurationSeconds float64
	DelaySeconds    float64
	Iterations      int // 0 = infinite
	Playback        Playback
	State           PlayState
}

// Infinite reports whether the animation loops forever
func (p Params) Infinite() bool {
	return p.Iterations == 0
}

// Paused is the logical OR of every pause condition
func Paused(cfg Config, in Interaction) bool {
	return !cfg.Playing ||
		(cfg.PauseOnHover && in.Hovered) ||
		(cfg.PauseOnClick && in.Clicked)
}

// StateOf maps config and pointer state to a play state
func StateOf(cfg Config, in Interaction) PlayState {
	if Paused(cfg, in) {
		return StatePaused
	}
	return StateRunning
}

// PlaybackOf maps direction to playback
func PlaybackOf(d Direction) Playback {
	if d == Reverse {
		return PlaybackReversed
	}
	return PlaybackNormal
}

// Resolve builds animation parameters from the latest inputs.
// Returns false while no valid measurement exists or when there is nothing
// to travel (empty content); no parameters are emitted in that case.
func Resolve(m Measurement, measured bool, cfg Config, in Interaction) (Params, bool) {
	if !measured {
		return Params{Multiplier: 1}, false
	}

	res := Compute(m, cfg)
	travel := BandWidth(m, res.Multiplier, cfg.AutoFill)
	if !(travel > 0) || !(res.DurationSeconds > 0) {
		return Params{Multiplier: res.Multiplier}, false
	}

	return Params{
		Multiplier:      res.Multiplier,
		TravelPx:        travel,
		DurationSeconds: res.DurationSeconds,
		DelaySeconds:    cfg.DelaySeconds,
		Iterations:      cfg.LoopCount,
		Playback:        PlaybackOf(cfg.Direction),
		State:           StateOf(cfg, in),
	}, true
}
