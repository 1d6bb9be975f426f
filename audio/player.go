// Package audio plays short synthesized cues for eye events.
// Entirely optional: a nil Player is safe to call, and playback
// failures never affect the animation.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies one sound effect.
type Cue uint8

const (
	CueBlink Cue = iota // soft low tick
	CueMood             // rising chirp
	CueScheme           // bright click
	CueMove             // quiet mid tone
)

// cueTones maps cues to sine frequency and duration.
var cueTones = map[Cue]struct {
	freq float64
	dur  time.Duration
}{
	CueBlink:  {freq: 220, dur: 40 * time.Millisecond},
	CueMood:   {freq: 660, dur: 90 * time.Millisecond},
	CueScheme: {freq: 880, dur: 50 * time.Millisecond},
	CueMove:   {freq: 440, dur: 60 * time.Millisecond},
}

// Player owns the speaker and cue playback.
type Player struct {
	sampleRate beep.SampleRate
	volume     float64
	ready      bool
}

// NewPlayer initializes the speaker from the environment config.
// A disabled config returns a silent player and no error.
func NewPlayer() (*Player, error) {
	cfg := LoadConfig()
	p := &Player{
		sampleRate: beep.SampleRate(cfg.SampleRate),
		volume:     cfg.MasterVolume,
	}
	if !cfg.Enabled {
		return p, nil
	}

	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.ready = true
	return p, nil
}

// Play starts a cue asynchronously. Safe on a nil or silent player.
func (p *Player) Play(c Cue) {
	if p == nil || !p.ready || p.volume <= 0 {
		return
	}
	tone, ok := cueTones[c]
	if !ok {
		return
	}

	sine, err := generators.SineTone(p.sampleRate, tone.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(p.sampleRate.N(tone.dur), sine))
}

// Close stops the speaker.
func (p *Player) Close() {
	if p != nil && p.ready {
		speaker.Close()
		p.ready = false
	}
}
