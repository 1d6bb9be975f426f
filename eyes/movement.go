package eyes

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/robo-eyes/parameter"
	"github.com/lixenwraith/robo-eyes/vmath"
)

// movementPatterns are the fixed cyclic sequences available in
// pattern mode.
var movementPatterns = map[string][]Direction{
	"square":  {Up, Right, Down, Left},
	"diamond": {Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft},
}

// patternNames is kept sorted so pattern selection is reproducible
// under a seeded rng.
var patternNames = []string{"diamond", "square"}

// MovementStats is a read-only snapshot of movement behavior.
type MovementStats struct {
	Mode           string
	CurrentPattern string // empty outside pattern mode
	Counts         map[Direction]int
	Recent         []Direction // oldest first, at most 10
}

// MovementController owns eye positions and gaze transitions.
//
// Both eyes share one offset: targets are always base + directional
// offset, and while no movement is in flight current == target ==
// last settled position. Base positions never change after
// construction; resizing the eyes is done by replacing the whole
// controller.
type MovementController struct {
	rng *rand.Rand

	baseLeft, baseRight     vmath.Vec2
	left, right             vmath.Vec2
	targetLeft, targetRight vmath.Vec2

	moving    bool
	direction Direction
	progress  float64
	startTime time.Time
	lastMove  time.Time
	duration  time.Duration

	patternMode  bool
	pattern      string
	patternIndex int

	counts  [DirectionCount]int
	history []Direction
}

// NewMovementController centers both eyes on the screen with the
// given spacing between them. now seeds the idle timer so wandering
// starts one idle interval after construction.
func NewMovementController(eyeWidth, eyeHeight, spacing, screenWidth, screenHeight int, rng *rand.Rand, now time.Time) *MovementController {
	centerX := screenWidth / 2
	centerY := screenHeight / 2

	totalWidth := eyeWidth*2 + spacing
	leftX := centerX - totalWidth/2
	rightX := leftX + eyeWidth + spacing
	baseY := centerY - eyeHeight/2

	c := &MovementController{
		rng:       rng,
		baseLeft:  vmath.Vec2{X: float64(leftX), Y: float64(baseY)},
		baseRight: vmath.Vec2{X: float64(rightX), Y: float64(baseY)},
		direction: Center,
		lastMove:  now,
	}
	c.left, c.right = c.baseLeft, c.baseRight
	c.targetLeft, c.targetRight = c.baseLeft, c.baseRight
	return c
}

// Wander starts a movement toward an automatically chosen direction:
// the next pattern step in pattern mode, a weighted random pick
// otherwise. No-op while a movement is in flight.
func (c *MovementController) Wander(now time.Time) {
	if c.moving {
		return
	}
	c.Look(now, c.pickDirection())
}

// Look starts a movement toward dir. In-flight movements cannot be
// interrupted or queued; the call is ignored until the current one
// settles.
func (c *MovementController) Look(now time.Time, dir Direction) {
	if c.moving {
		return
	}

	c.direction = dir
	c.counts[dir]++
	c.history = append(c.history, dir)
	if len(c.history) > parameter.MaxRecentHistory {
		c.history = c.history[1:]
	}

	offset := c.jitteredOffset(dir)
	c.targetLeft = c.baseLeft.Add(offset)
	c.targetRight = c.baseRight.Add(offset)

	// 0.8–1.2× base duration for natural variation
	c.duration = time.Duration((0.8 + c.rng.Float64()*0.4) * float64(parameter.MoveDuration))

	c.moving = true
	c.startTime = now
	c.progress = 0
}

// pickDirection chooses the next gaze target. The current direction's
// weight is halved to bias away from immediate repeats; repeats stay
// possible.
func (c *MovementController) pickDirection() Direction {
	if c.patternMode && c.pattern != "" {
		seq := movementPatterns[c.pattern]
		dir := seq[c.patternIndex]
		c.patternIndex = (c.patternIndex + 1) % len(seq)
		return dir
	}

	weights := directionWeights
	weights[c.direction] *= 0.5

	total := 0.0
	for _, w := range weights {
		total += w
	}

	r := c.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return Direction(i)
		}
	}
	return Center
}

// jitteredOffset perturbs each axis of the base offset independently
// by ±MovementVariation for naturalism. Center stays exactly centered
// (zero times anything is zero).
func (c *MovementController) jitteredOffset(dir Direction) vmath.Vec2 {
	base := dir.Offset()
	jx := 1 + (c.rng.Float64()*2-1)*parameter.MovementVariation
	jy := 1 + (c.rng.Float64()*2-1)*parameter.MovementVariation
	return vmath.Vec2{X: base.X * jx, Y: base.Y * jy}
}

// Update advances an in-flight movement to now. Progress is clamped,
// so arbitrarily large tick gaps settle cleanly at the target.
func (c *MovementController) Update(now time.Time) {
	if !c.moving {
		return
	}

	elapsed := now.Sub(c.startTime)
	if elapsed < 0 {
		elapsed = 0
	}
	c.progress = vmath.Clamp01(float64(elapsed) / float64(c.duration))

	if c.progress >= 1 {
		c.moving = false
		c.lastMove = now
		c.left = c.targetLeft
		c.right = c.targetRight
		return
	}

	// Elastic progress overshoots slightly before settling
	p := vmath.ElasticLerp(0, 1, c.progress)
	c.left = c.baseLeft.LerpTo(c.targetLeft, p)
	c.right = c.baseRight.LerpTo(c.targetRight, p)
}

// ToggleMovementMode flips between pattern and random wandering.
// Entering pattern mode picks a random pattern and rewinds it;
// leaving clears the active pattern. Returns true if now in pattern
// mode.
func (c *MovementController) ToggleMovementMode() bool {
	c.patternMode = !c.patternMode
	if c.patternMode {
		c.pattern = patternNames[c.rng.Intn(len(patternNames))]
		c.patternIndex = 0
	} else {
		c.pattern = ""
	}
	return c.patternMode
}

// Stats returns a copy of the movement statistics. Pure query.
func (c *MovementController) Stats() MovementStats {
	counts := make(map[Direction]int, DirectionCount)
	for d, n := range c.counts {
		counts[Direction(d)] = n
	}
	recent := make([]Direction, len(c.history))
	copy(recent, c.history)

	mode := "random"
	if c.patternMode {
		mode = "pattern"
	}
	return MovementStats{
		Mode:           mode,
		CurrentPattern: c.pattern,
		Counts:         counts,
		Recent:         recent,
	}
}

// LeftPos returns the live left-eye position.
func (c *MovementController) LeftPos() vmath.Vec2 { return c.left }

// RightPos returns the live right-eye position.
func (c *MovementController) RightPos() vmath.Vec2 { return c.right }

// BaseLeft returns the left eye's rest position.
func (c *MovementController) BaseLeft() vmath.Vec2 { return c.baseLeft }

// BaseRight returns the right eye's rest position.
func (c *MovementController) BaseRight() vmath.Vec2 { return c.baseRight }

// IsMoving reports whether a transition is in flight.
func (c *MovementController) IsMoving() bool { return c.moving }

// Direction returns the last applied gaze direction.
func (c *MovementController) Direction() Direction { return c.direction }

// Progress returns the raw linear transition progress in [0,1].
func (c *MovementController) Progress() float64 { return c.progress }

// LastMoveAt returns when the last movement settled.
func (c *MovementController) LastMoveAt() time.Time { return c.lastMove }

// PatternMode reports whether pattern-sequenced movement is active.
func (c *MovementController) PatternMode() bool { return c.patternMode }
