package parameter

import "time"

// Animation timing
const (
	// BlinkInterval is the fallback blink period used by drivers when
	// the blink controller has not yet suggested a delay
	BlinkInterval = 3000 * time.Millisecond

	// MoodDuration bounds any non-normal mood before auto-revert
	MoodDuration = 2000 * time.Millisecond

	// TransitionDuration is the mood cross-fade window
	TransitionDuration = 200 * time.Millisecond

	// IdleMoveInterval is how long the eyes rest before wandering
	IdleMoveInterval = 2000 * time.Millisecond

	// MoveDuration is the base movement transition length; actual
	// durations are sampled uniformly from [0.8,1.2]× this value
	MoveDuration = 500 * time.Millisecond
)

// Blink dynamics, in units of open-fraction per update call
const (
	DefaultBlinkSpeed = 0.2
	MinBlinkSpeed     = 0.15
	MaxBlinkSpeed     = 0.25
)

// Happy-mood bounce oscillation
const (
	HappyBounceSpeed     = 2.0  // phase rate, scaled by elapsed ms / 100
	HappyBounceAmplitude = 15.0 // peak offset in virtual pixels
)

// Autopilot intervals (showcase driver): each behavior re-fires after
// a uniformly random delay within its range
var (
	RandomMoodInterval   = [2]time.Duration{2 * time.Second, 5 * time.Second}
	RandomColorInterval  = [2]time.Duration{5 * time.Second, 10 * time.Second}
	RandomSizeInterval   = [2]time.Duration{3 * time.Second, 7 * time.Second}
	RandomEffectInterval = [2]time.Duration{1 * time.Second, 4 * time.Second}
)
