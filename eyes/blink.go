package eyes

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/robo-eyes/parameter"
)

// BlinkController animates the eyelid open fraction. It is
// frame-coupled: Update takes no timestamp and moves the lid by the
// per-blink speed on every call.
//
// The controller never schedules its own blinks; after each blink it
// publishes an advisory delay through NextBlinkDelay for an external
// driver to act on.
type BlinkController struct {
	open     float64 // 1 = fully open, 0 = fully closed
	speed    float64 // sign encodes closing (+) vs opening (−) phase
	blinking bool
	next     time.Duration
	rng      *rand.Rand
}

// NewBlinkController creates an open, idle eyelid.
func NewBlinkController(rng *rand.Rand) *BlinkController {
	return &BlinkController{
		open:  1.0,
		speed: parameter.DefaultBlinkSpeed,
		rng:   rng,
	}
}

// StartBlink begins a blink with a per-blink randomized speed.
// Ignored while a blink is in flight; blinks cannot be restarted.
func (c *BlinkController) StartBlink() {
	if c.blinking {
		return
	}
	c.blinking = true
	c.speed = parameter.MinBlinkSpeed + c.rng.Float64()*(parameter.MaxBlinkSpeed-parameter.MinBlinkSpeed)
	c.open = 1.0
}

// Update advances the eyelid one frame: close to zero, reverse, reopen
// to one. On completion the speed is restored positive and the next
// advisory blink delay is sampled.
func (c *BlinkController) Update() {
	if !c.blinking {
		return
	}

	c.open -= c.speed

	if c.open <= 0 {
		c.open = 0
		c.speed = -c.speed
	} else if c.open >= 1 {
		c.open = 1
		c.blinking = false
		if c.speed < 0 {
			c.speed = -c.speed
		}
		c.next = c.nextBlinkInterval()
	}
}

// nextBlinkInterval samples a natural pause before the next blink:
// uniform 2.5–4.5s plus gaussian noise, floored at 1.5s.
func (c *BlinkController) nextBlinkInterval() time.Duration {
	base := 2.5 + c.rng.Float64()*2.0
	variation := c.rng.NormFloat64() * 0.5
	seconds := base + variation
	if seconds < 1.5 {
		seconds = 1.5
	}
	return time.Duration(seconds * float64(time.Second))
}

// Open returns the eyelid open fraction in [0,1].
func (c *BlinkController) Open() float64 { return c.open }

// IsBlinking reports whether a blink is in flight.
func (c *BlinkController) IsBlinking() bool { return c.blinking }

// NextBlinkDelay is the advisory pause suggested after the last
// completed blink. Zero until the first blink finishes.
func (c *BlinkController) NextBlinkDelay() time.Duration { return c.next }
