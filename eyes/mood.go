package eyes

import (
	"math"
	"time"

	"github.com/lixenwraith/robo-eyes/parameter"
	"github.com/lixenwraith/robo-eyes/vmath"
)

// Mood represents the current emotional display state.
type Mood uint8

const (
	MoodNormal Mood = iota // resting state, never expires
	MoodHappy              // crescent eyes with bounce
	MoodConfused           // asymmetric squint
	MoodSurprised          // both eyes widen

	MoodCount = 4
)

var moodNames = [MoodCount]string{"normal", "happy", "confused", "surprised"}

func (m Mood) String() string {
	if int(m) >= MoodCount {
		return "unknown"
	}
	return moodNames[m]
}

// MoodController manages mood transitions and mood-specific secondary
// animation. Non-normal moods expire on their own after
// parameter.MoodDuration, so callers never need to clear one manually.
type MoodController struct {
	current            Mood
	startTime          time.Time
	durationProgress   float64
	transitionProgress float64
	bounceOffset       float64
}

// NewMoodController starts at the normal mood, treating now as the
// mood's start for transition purposes.
func NewMoodController(now time.Time) *MoodController {
	return &MoodController{
		current:   MoodNormal,
		startTime: now,
	}
}

// SetMood switches to mood and restarts transition tracking.
// Setting the mood it is already in is a no-op.
func (c *MoodController) SetMood(mood Mood, now time.Time) {
	if mood == c.current {
		return
	}
	c.current = mood
	c.startTime = now
	c.durationProgress = 0
	c.transitionProgress = 0
}

// Update advances transition and lifetime progress to now.
// Once the transition completes it stays at 1 until the next mood
// change; a non-normal mood past its lifetime reverts to normal.
func (c *MoodController) Update(now time.Time) {
	elapsed := now.Sub(c.startTime)
	if elapsed < 0 {
		elapsed = 0
	}

	if c.transitionProgress < 1 {
		c.transitionProgress = vmath.Clamp01(float64(elapsed) / float64(parameter.TransitionDuration))
	}

	if c.current != MoodNormal {
		c.durationProgress = float64(elapsed) / float64(parameter.MoodDuration)
		if c.durationProgress >= 1 {
			c.SetMood(MoodNormal, now)
		}
	}

	if c.current == MoodHappy {
		phase := elapsed.Seconds() * 1000 * parameter.HappyBounceSpeed / 100
		c.bounceOffset = math.Sin(phase) * parameter.HappyBounceAmplitude
	} else {
		c.bounceOffset = 0
	}
}

// Mood returns the active mood.
func (c *MoodController) Mood() Mood { return c.current }

// TransitionProgress is the cross-fade fraction in [0,1], monotonic
// within one mood's lifetime.
func (c *MoodController) TransitionProgress() float64 { return c.transitionProgress }

// DurationProgress is the fraction of the mood's lifetime elapsed.
// Only meaningful for non-normal moods.
func (c *MoodController) DurationProgress() float64 { return c.durationProgress }

// BounceOffset is the vertical oscillation in virtual pixels, nonzero
// only while happy.
func (c *MoodController) BounceOffset() float64 { return c.bounceOffset }
