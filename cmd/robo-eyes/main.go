// Interactive robot-eyes driver: keyboard commands steer mood, gaze,
// blinking, and styling while the engine animates at a fixed tick
// rate.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/robo-eyes/audio"
	"github.com/lixenwraith/robo-eyes/eyes"
	"github.com/lixenwraith/robo-eyes/logging"
	"github.com/lixenwraith/robo-eyes/parameter"
	"github.com/lixenwraith/robo-eyes/render"
	"github.com/lixenwraith/robo-eyes/terminal"
)

const logDir = "logs"

var (
	debugFlag = flag.Bool("debug", false, "write engine event log under ./logs")
	seedFlag  = flag.Int64("seed", 0, "rng seed, 0 = time-based")
	gridFlag  = flag.Bool("grid", false, "start with the reference grid visible")
	muteFlag  = flag.Bool("mute", false, "disable sound cues")
	fpsFlag   = flag.Int("fps", 30, "animation tick rate")
)

func main() {
	flag.Parse()

	screen, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before the stack trace on a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nROBO-EYES CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	var observer eyes.Observer
	if *debugFlag {
		obs, logFile, err := logging.NewFileObserver(logDir)
		if err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		observer = obs
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := eyes.New(eyes.Options{
		Rand:     rand.New(rand.NewSource(seed)),
		Observer: observer,
	})

	var player *audio.Player
	if !*muteFlag {
		// Non-fatal, the eyes can run silently
		var audioErr error
		player, audioErr = audio.NewPlayer()
		if audioErr != nil && observer != nil {
			observer.Event("audio", fmt.Sprintf("speaker init failed: %v", audioErr))
		}
		defer player.Close()
	}

	fps := *fpsFlag
	if fps < 1 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			screen.PostTick()
		}
	}()

	app := &app{
		screen:    screen,
		eyes:      e,
		player:    player,
		showGrid:  *gridFlag,
		lastBlink: time.Now(),
	}
	app.run()
}

type app struct {
	screen    *terminal.Screen
	eyes      *eyes.Eyes
	player    *audio.Player
	showGrid  bool
	showStats bool
	lastBlink time.Time
}

func (a *app) run() {
	for {
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !a.handleKey(ev) {
				return
			}
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			a.tick()
		case nil:
			return
		}
	}
}

// tick advances the engine one frame, blinks naturally, and redraws.
func (a *app) tick() {
	now := time.Now()

	// Natural blinking on the controller's advisory delay
	delay := a.eyes.Blink().NextBlinkDelay()
	if delay <= 0 {
		delay = parameter.BlinkInterval
	}
	if now.Sub(a.lastBlink) > delay {
		a.eyes.StartBlink()
		a.player.Play(audio.CueBlink)
		a.lastBlink = now
	}

	a.eyes.Update()
	a.draw()
}

func (a *app) draw() {
	w, h := a.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	cells := terminal.NewBuffer(w, h)

	cfg := render.Config{ShowGrid: a.showGrid, ShowHUD: true}
	if a.showStats {
		stats := a.eyes.Movement().Stats()
		cfg.Stats = &stats
	}
	render.Frame(cells, w, h, a.eyes.Snapshot(), cfg)
	a.screen.Flush(cells, w, h)
}

// handleKey dispatches one key press; returns false to quit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.look(eyes.Up)
		return true
	case tcell.KeyDown:
		a.look(eyes.Down)
		return true
	case tcell.KeyLeft:
		a.look(eyes.Left)
		return true
	case tcell.KeyRight:
		a.look(eyes.Right)
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false

	// Moods
	case '1':
		a.setMood(eyes.MoodNormal)
	case '2':
		a.setMood(eyes.MoodHappy)
	case '3':
		a.setMood(eyes.MoodConfused)
	case '4':
		a.setMood(eyes.MoodSurprised)

	// Gaze
	case ' ':
		a.eyes.StartBlink()
		a.player.Play(audio.CueBlink)
		a.lastBlink = time.Now()
	case 'r':
		a.look(eyes.Center)
	case 'm':
		a.eyes.ToggleMovementMode()

	// Size and effects
	case '+', '=':
		a.eyes.AdjustSize(parameter.SizeChangeAmount)
	case '-':
		a.eyes.AdjustSize(-parameter.SizeChangeAmount)
	case 'c':
		a.eyes.CycleColorScheme()
		a.player.Play(audio.CueScheme)
	case '[':
		a.eyes.AdjustGlowRadius(-parameter.GlowChangeAmount)
	case ']':
		a.eyes.AdjustGlowRadius(parameter.GlowChangeAmount)
	case 'o':
		a.eyes.AdjustBorderThickness(-parameter.BorderChangeAmount)
	case 'p':
		a.eyes.AdjustBorderThickness(parameter.BorderChangeAmount)
	case ',':
		a.eyes.AdjustGlowIntensity(-parameter.IntensityChangeAmount)
	case '.':
		a.eyes.AdjustGlowIntensity(parameter.IntensityChangeAmount)
	case 'a':
		a.eyes.AdjustSizeVariation(-parameter.VariationChangeAmount)
	case 's':
		a.eyes.AdjustSizeVariation(parameter.VariationChangeAmount)

	// Overlays
	case 'g':
		a.showGrid = !a.showGrid
	case 't':
		a.showStats = !a.showStats
	}
	return true
}

func (a *app) setMood(m eyes.Mood) {
	a.eyes.SetMood(m)
	a.player.Play(audio.CueMood)
}

func (a *app) look(d eyes.Direction) {
	a.eyes.Look(d)
	a.player.Play(audio.CueMove)
}
