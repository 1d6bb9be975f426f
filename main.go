// Autopilot showcase: the eyes run themselves with randomized moods,
// color schemes, sizes, and effects. No interaction beyond quitting;
// the full keyboard driver lives in cmd/robo-eyes.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/robo-eyes/eyes"
	"github.com/lixenwraith/robo-eyes/parameter"
	"github.com/lixenwraith/robo-eyes/render"
	"github.com/lixenwraith/robo-eyes/terminal"
)

const tickRate = 30

func main() {
	screen, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSHOWCASE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	e := eyes.New(eyes.Options{Rand: rng})

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			screen.PostTick()
		}
	}()

	now := time.Now()
	pilot := &autopilot{
		rng:       rng,
		nextMood:  now.Add(interval(rng, parameter.RandomMoodInterval)),
		nextColor: now.Add(interval(rng, parameter.RandomColorInterval)),
		nextSize:  now.Add(interval(rng, parameter.RandomSizeInterval)),
		nextFx:    now.Add(interval(rng, parameter.RandomEffectInterval)),
		lastBlink: now,
	}

	for {
		switch a := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if a.Key() == tcell.KeyEscape || a.Key() == tcell.KeyCtrlC || a.Rune() == 'q' {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventInterrupt:
			pilot.step(e)
			e.Update()

			w, h := screen.Size()
			if w > 0 && h > 0 {
				cells := terminal.NewBuffer(w, h)
				render.Frame(cells, w, h, e.Snapshot(), render.Config{ShowHUD: true})
				screen.Flush(cells, w, h)
			}
		case nil:
			return
		}
	}
}

// autopilot fires one random behavior per category whenever that
// category's deadline passes, then reschedules it.
type autopilot struct {
	rng       *rand.Rand
	nextMood  time.Time
	nextColor time.Time
	nextSize  time.Time
	nextFx    time.Time
	lastBlink time.Time
}

func (p *autopilot) step(e *eyes.Eyes) {
	now := time.Now()

	if now.After(p.nextMood) {
		e.SetMood(eyes.Mood(p.rng.Intn(eyes.MoodCount)))
		p.nextMood = now.Add(interval(p.rng, parameter.RandomMoodInterval))
	}
	if now.After(p.nextColor) {
		e.CycleColorScheme()
		p.nextColor = now.Add(interval(p.rng, parameter.RandomColorInterval))
	}
	if now.After(p.nextSize) {
		change := parameter.SizeChangeAmount
		if p.rng.Intn(2) == 0 {
			change = -change
		}
		e.AdjustSize(change)
		p.nextSize = now.Add(interval(p.rng, parameter.RandomSizeInterval))
	}
	if now.After(p.nextFx) {
		switch p.rng.Intn(3) {
		case 0:
			e.AdjustGlowRadius(p.signed(parameter.GlowChangeAmount))
		case 1:
			e.AdjustGlowIntensity(p.signed(parameter.IntensityChangeAmount))
		case 2:
			e.AdjustBorderThickness(p.signed(parameter.BorderChangeAmount))
		}
		p.nextFx = now.Add(interval(p.rng, parameter.RandomEffectInterval))
	}

	delay := e.Blink().NextBlinkDelay()
	if delay <= 0 {
		delay = parameter.BlinkInterval
	}
	if now.Sub(p.lastBlink) > delay {
		e.StartBlink()
		p.lastBlink = now
	}
}

func (p *autopilot) signed(amount int) int {
	if p.rng.Intn(2) == 0 {
		return -amount
	}
	return amount
}

// interval samples a uniform delay from [lo, hi].
func interval(rng *rand.Rand, r [2]time.Duration) time.Duration {
	lo, hi := r[0], r[1]
	return lo + time.Duration(rng.Int63n(int64(hi-lo)))
}
