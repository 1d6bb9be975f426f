// Package eyes implements the animation state engine for a pair of
// stylized robot eyes: gaze movement, blinking, mood expression, and
// visual styling, all advanced by an external frame loop.
//
// The engine is single-threaded and poll-driven. A driver calls
// Update once per tick; waiting (for a blink, a movement, a mood
// expiry) is expressed as elapsed-time comparisons, never as internal
// scheduling.
package eyes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/robo-eyes/parameter"
	"github.com/lixenwraith/robo-eyes/parameter/visual"
	"github.com/lixenwraith/robo-eyes/vmath"
)

// Options configures a new engine. Zero values select the defaults:
// the virtual 800×600 canvas, a monotonic clock, a time-seeded rng,
// and no observer.
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	Clock        Clock
	Rand         *rand.Rand
	Observer     Observer
}

// Eyes composes the movement, mood, blink, and effects controllers
// and applies the idle-wander policy. Each controller exclusively
// owns its state; the facade holds no duplicate copies.
type Eyes struct {
	screenWidth  int
	screenHeight int

	eyeWidth   int
	eyeHeight  int
	eyeSpacing int

	clock    Clock
	rng      *rand.Rand
	observer Observer

	movement *MovementController
	mood     *MoodController
	blink    *BlinkController
	effects  *EffectsController
}

// New builds an engine with default eye dimensions centered on the
// configured screen.
func New(opts Options) *Eyes {
	if opts.ScreenWidth <= 0 {
		opts.ScreenWidth = parameter.ScreenWidth
	}
	if opts.ScreenHeight <= 0 {
		opts.ScreenHeight = parameter.ScreenHeight
	}
	if opts.Clock == nil {
		opts.Clock = NewMonotonicClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Eyes{
		screenWidth:  opts.ScreenWidth,
		screenHeight: opts.ScreenHeight,
		eyeWidth:     parameter.DefaultEyeWidth,
		eyeHeight:    parameter.DefaultEyeHeight,
		eyeSpacing:   parameter.DefaultEyeSpacing,
		clock:        opts.Clock,
		rng:          opts.Rand,
		observer:     opts.Observer,
	}

	now := e.clock.Now()
	e.movement = NewMovementController(e.eyeWidth, e.eyeHeight, e.eyeSpacing, e.screenWidth, e.screenHeight, e.rng, now)
	e.mood = NewMoodController(now)
	e.blink = NewBlinkController(e.rng)
	e.effects = NewEffectsController()

	e.notify("init", fmt.Sprintf("eyes created %dx%d on %dx%d", e.eyeWidth, e.eyeHeight, e.screenWidth, e.screenHeight))
	return e
}

// Update advances all controllers one tick and wanders when the gaze
// has been idle long enough. Called once per frame by the driver.
func (e *Eyes) Update() {
	now := e.clock.Now()

	e.movement.Update(now)
	e.mood.Update(now)
	e.blink.Update()

	if !e.movement.IsMoving() && now.Sub(e.movement.LastMoveAt()) > parameter.IdleMoveInterval {
		e.movement.Wander(now)
	}

	e.notifyState()
}

// SetMood switches the emotional display state.
func (e *Eyes) SetMood(mood Mood) {
	e.notify("mood", fmt.Sprintf("mood changed to %s", mood))
	e.mood.SetMood(mood, e.clock.Now())
}

// Look starts a movement toward dir.
func (e *Eyes) Look(dir Direction) {
	e.notify("movement", fmt.Sprintf("looking %s", dir))
	e.movement.Look(e.clock.Now(), dir)
}

// Wander starts a movement toward an automatically chosen direction.
func (e *Eyes) Wander() {
	e.notify("movement", "wandering")
	e.movement.Wander(e.clock.Now())
}

// StartBlink begins a blink; ignored while one is in flight.
func (e *Eyes) StartBlink() {
	e.notify("blink", "blink started")
	e.blink.StartBlink()
}

// ToggleMovementMode flips between pattern and random wandering and
// returns true if now in pattern mode.
func (e *Eyes) ToggleMovementMode() bool {
	on := e.movement.ToggleMovementMode()
	if on {
		e.notify("movement_mode", "pattern mode on: "+e.movement.pattern)
	} else {
		e.notify("movement_mode", "pattern mode off")
	}
	return on
}

// AdjustSize grows or shrinks both eye dimensions jointly, clamped
// into [MinEyeSize, MaxEyeSize]. A real change rebuilds the movement
// controller wholesale: base positions recenter and any in-flight
// movement (and its statistics) are deliberately discarded rather
// than migrated.
func (e *Eyes) AdjustSize(change int) (int, int) {
	newWidth := vmath.ClampInt(e.eyeWidth+change, parameter.MinEyeSize, parameter.MaxEyeSize)
	newHeight := vmath.ClampInt(e.eyeHeight+change, parameter.MinEyeSize, parameter.MaxEyeSize)

	if newWidth != e.eyeWidth || newHeight != e.eyeHeight {
		e.eyeWidth = newWidth
		e.eyeHeight = newHeight
		e.movement = NewMovementController(e.eyeWidth, e.eyeHeight, e.eyeSpacing, e.screenWidth, e.screenHeight, e.rng, e.clock.Now())
		e.notify("size", fmt.Sprintf("eye size changed to %dx%d", e.eyeWidth, e.eyeHeight))
	}
	return e.eyeWidth, e.eyeHeight
}

// AdjustGlowRadius shifts the glow radius, clamped.
func (e *Eyes) AdjustGlowRadius(change int) int {
	r := e.effects.AdjustGlowRadius(change)
	e.notify("glow", fmt.Sprintf("glow radius %d", r))
	return r
}

// AdjustGlowIntensity shifts the glow intensity, clamped.
func (e *Eyes) AdjustGlowIntensity(change int) int {
	v := e.effects.AdjustGlowIntensity(change)
	e.notify("glow", fmt.Sprintf("glow intensity %d", v))
	return v
}

// AdjustBorderThickness shifts the border thickness, clamped.
func (e *Eyes) AdjustBorderThickness(change int) int {
	v := e.effects.AdjustBorderThickness(change)
	e.notify("border", fmt.Sprintf("border thickness %d", v))
	return v
}

// AdjustSizeVariation shifts the directional size boost, clamped.
func (e *Eyes) AdjustSizeVariation(change float64) float64 {
	v := e.effects.AdjustSizeVariation(change)
	e.notify("variation", fmt.Sprintf("size variation %.2f", v))
	return v
}

// CycleColorScheme advances to the next color scheme, wrapping.
func (e *Eyes) CycleColorScheme() visual.Scheme {
	s := e.effects.CycleScheme()
	e.notify("scheme", "color scheme "+s.String())
	return s
}

// Movement exposes the movement controller for stats queries.
func (e *Eyes) Movement() *MovementController { return e.movement }

// MoodState exposes the mood controller.
func (e *Eyes) MoodState() *MoodController { return e.mood }

// Blink exposes the blink controller.
func (e *Eyes) Blink() *BlinkController { return e.blink }

// Effects exposes the effects controller.
func (e *Eyes) Effects() *EffectsController { return e.effects }

// EyeSize returns the current base eye dimensions.
func (e *Eyes) EyeSize() (int, int) { return e.eyeWidth, e.eyeHeight }
