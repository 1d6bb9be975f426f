package eyes

import (
	"github.com/lixenwraith/robo-eyes/parameter/visual"
	"github.com/lixenwraith/robo-eyes/vmath"
)

// EyeShape is one eye's position and dimensions after all per-tick
// adjustments.
type EyeShape struct {
	Pos    vmath.Vec2 // top-left corner in virtual pixels
	Width  float64
	Height float64
}

// Snapshot is the read-only per-tick state a renderer consumes.
// Building one mutates nothing.
type Snapshot struct {
	Left  EyeShape
	Right EyeShape

	Mood      Mood
	Direction Direction
	Moving    bool

	// CrescentCurve is the eased happy-crescent factor in [0,1];
	// renderers should only cut the crescent while BlinkOpen > 0.3.
	CrescentCurve float64

	// BounceOffset is the happy-bounce Y offset in virtual pixels.
	BounceOffset float64

	BlinkOpen float64
	Blinking  bool

	Scheme          visual.Scheme
	Colors          visual.Colors
	GlowRadius      int
	GlowIntensity   int
	BorderThickness int
	SizeVariation   float64
}

// Snapshot computes the current render state: blink scales height,
// the active mood reshapes the eyes through its eased transition, and
// the gaze direction boosts the leading eye's size.
func (e *Eyes) Snapshot() Snapshot {
	currentHeight := float64(e.eyeHeight) * e.blink.Open()

	leftWidth := float64(e.eyeWidth)
	rightWidth := float64(e.eyeWidth)
	leftHeight := currentHeight
	rightHeight := currentHeight
	crescent := 0.0

	transition := vmath.EaseInOut(e.mood.TransitionProgress())

	switch e.mood.Mood() {
	case MoodHappy:
		crescent = transition
	case MoodConfused:
		// Left eye squints toward 70% height
		target := currentHeight * 0.7
		leftHeight = currentHeight + (target-currentHeight)*transition
	case MoodSurprised:
		// Both eyes grow toward 120%
		targetWidth := float64(e.eyeWidth) * 1.2
		targetHeight := currentHeight * 1.2
		leftWidth = float64(e.eyeWidth) + (targetWidth-float64(e.eyeWidth))*transition
		rightWidth = leftWidth
		leftHeight = currentHeight + (targetHeight-currentHeight)*transition
		rightHeight = leftHeight
	}

	dir := e.movement.Direction()
	variation := e.effects.SizeVariation()
	if dir.LeansLeft() {
		leftWidth *= 1 + variation
		leftHeight *= 1 + variation
	} else if dir.LeansRight() {
		rightWidth *= 1 + variation
		rightHeight *= 1 + variation
	}

	return Snapshot{
		Left:            EyeShape{Pos: e.movement.LeftPos(), Width: leftWidth, Height: leftHeight},
		Right:           EyeShape{Pos: e.movement.RightPos(), Width: rightWidth, Height: rightHeight},
		Mood:            e.mood.Mood(),
		Direction:       dir,
		Moving:          e.movement.IsMoving(),
		CrescentCurve:   crescent,
		BounceOffset:    e.mood.BounceOffset(),
		BlinkOpen:       e.blink.Open(),
		Blinking:        e.blink.IsBlinking(),
		Scheme:          e.effects.Scheme(),
		Colors:          e.effects.Scheme().Colors(),
		GlowRadius:      e.effects.GlowRadius(),
		GlowIntensity:   e.effects.GlowIntensity(),
		BorderThickness: e.effects.BorderThickness(),
		SizeVariation:   e.effects.SizeVariation(),
	}
}
