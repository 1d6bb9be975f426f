package eyes

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/robo-eyes/parameter"
)

func newTestMovement(t *testing.T, seed int64) (*MovementController, time.Time) {
	t.Helper()
	t0 := time.Now()
	c := NewMovementController(
		parameter.DefaultEyeWidth, parameter.DefaultEyeHeight, parameter.DefaultEyeSpacing,
		parameter.ScreenWidth, parameter.ScreenHeight,
		rand.New(rand.NewSource(seed)), t0)
	return c, t0
}

func TestMovementBasePositions(t *testing.T) {
	c, _ := newTestMovement(t, 1)

	// 800x600 screen, 300x300 eyes, 40 spacing
	if got := c.BaseLeft(); got.X != 80 || got.Y != 150 {
		t.Errorf("BaseLeft() = %v, want {80 150}", got)
	}
	if got := c.BaseRight(); got.X != 420 || got.Y != 150 {
		t.Errorf("BaseRight() = %v, want {420 150}", got)
	}
	if c.LeftPos() != c.BaseLeft() || c.RightPos() != c.BaseRight() {
		t.Error("eyes should start at their base positions")
	}
	if c.Direction() != Center {
		t.Errorf("Direction() = %v, want center", c.Direction())
	}
}

func TestLookSettlesAtJitteredTarget(t *testing.T) {
	c, t0 := newTestMovement(t, 5)

	c.Look(t0, Right)
	if !c.IsMoving() {
		t.Fatal("Look should start a movement")
	}

	// Max duration is 1.2 x 500ms; one second settles any movement
	c.Update(t0.Add(time.Second))
	if c.IsMoving() {
		t.Fatal("movement did not settle")
	}

	// Target offset is MoveAmount with at most 20% jitter per axis
	dx := c.LeftPos().X - c.BaseLeft().X
	dy := c.LeftPos().Y - c.BaseLeft().Y
	maxJitter := parameter.MoveAmount * parameter.MovementVariation
	if math.Abs(dx-parameter.MoveAmount) > maxJitter+1e-9 {
		t.Errorf("x offset %v not within 20%% of %v", dx, float64(parameter.MoveAmount))
	}
	if dy != 0 {
		t.Errorf("y offset %v, want 0 for right movement", dy)
	}

	// Both eyes share the same offset
	rdx := c.RightPos().X - c.BaseRight().X
	if math.Abs(rdx-dx) > 1e-9 {
		t.Errorf("eye offsets diverged: left %v, right %v", dx, rdx)
	}

	if got := c.LastMoveAt(); !got.Equal(t0.Add(time.Second)) {
		t.Errorf("LastMoveAt() = %v, want settle time", got)
	}
}

func TestLookCenterIsExact(t *testing.T) {
	c, t0 := newTestMovement(t, 9)

	c.Look(t0, Right)
	c.Update(t0.Add(time.Second))
	c.Look(t0.Add(time.Second), Center)
	c.Update(t0.Add(2 * time.Second))

	// Zero base offset stays zero under multiplicative jitter
	if c.LeftPos() != c.BaseLeft() {
		t.Errorf("LeftPos() = %v, want base %v", c.LeftPos(), c.BaseLeft())
	}
	if c.RightPos() != c.BaseRight() {
		t.Errorf("RightPos() = %v, want base %v", c.RightPos(), c.BaseRight())
	}
}

func TestLookIgnoredWhileMoving(t *testing.T) {
	c, t0 := newTestMovement(t, 2)

	c.Look(t0, Up)
	c.Look(t0.Add(10*time.Millisecond), Down)

	if c.Direction() != Up {
		t.Errorf("Direction() = %v, want up (second Look ignored)", c.Direction())
	}
	stats := c.Stats()
	if stats.Counts[Down] != 0 {
		t.Error("ignored Look should not count")
	}
	if len(stats.Recent) != 1 {
		t.Errorf("Recent has %d entries, want 1", len(stats.Recent))
	}
}

func TestMovementProgressClampsOnLargeGap(t *testing.T) {
	c, t0 := newTestMovement(t, 3)

	c.Look(t0, DownLeft)
	c.Update(t0.Add(time.Hour))

	if c.IsMoving() {
		t.Error("hour-long gap should settle the movement")
	}
	if c.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", c.Progress())
	}
	if c.LeftPos() != c.targetLeft {
		t.Errorf("LeftPos() = %v, want exact target %v", c.LeftPos(), c.targetLeft)
	}
}

func TestMovementHistoryCapped(t *testing.T) {
	c, t0 := newTestMovement(t, 4)

	now := t0
	for i := 0; i < 15; i++ {
		c.Look(now, Direction(i%DirectionCount))
		now = now.Add(time.Second)
		c.Update(now)
	}

	stats := c.Stats()
	if len(stats.Recent) != parameter.MaxRecentHistory {
		t.Errorf("Recent has %d entries, want %d", len(stats.Recent), parameter.MaxRecentHistory)
	}
	// Oldest first: the 15 looks were directions 0..8,0..5, so the
	// last 10 start at direction 5
	if stats.Recent[0] != Direction(5) {
		t.Errorf("Recent[0] = %v, want %v", stats.Recent[0], Direction(5))
	}
	if stats.Recent[9] != Direction(5) {
		t.Errorf("Recent[9] = %v, want %v", stats.Recent[9], Direction(5))
	}

	total := 0
	for _, n := range stats.Counts {
		total += n
	}
	if total != 15 {
		t.Errorf("counts sum to %d, want 15", total)
	}
}

func TestPickDirectionDistribution(t *testing.T) {
	c, _ := newTestMovement(t, 1234)

	const draws = 20000
	var counts [DirectionCount]int
	for i := 0; i < draws; i++ {
		counts[c.pickDirection()]++
	}

	// Center carries 0.30 weight (halved when it is also the current
	// direction, which it is here, so expect ~17.6%); every direction
	// must still appear
	for d := 0; d < DirectionCount; d++ {
		if counts[d] == 0 {
			t.Errorf("direction %v never chosen in %d draws", Direction(d), draws)
		}
	}
	centerFrac := float64(counts[Center]) / draws
	if centerFrac < 0.12 || centerFrac > 0.25 {
		t.Errorf("center chosen %.1f%% of draws, outside expected band", centerFrac*100)
	}
	if counts[Center] <= counts[DownLeft] {
		t.Error("center should be chosen more often than a 0.05-weight diagonal")
	}
}

func TestAntiRepeatHalving(t *testing.T) {
	c, t0 := newTestMovement(t, 77)

	// Settle on Up, then sample: Up's weight drops from 0.10 to 0.05
	c.Look(t0, Up)
	c.Update(t0.Add(time.Second))

	const draws = 20000
	var counts [DirectionCount]int
	for i := 0; i < draws; i++ {
		counts[c.pickDirection()]++
	}

	// Up (halved to 0.05 of ~0.95 total) vs Down (0.10)
	if counts[Up] >= counts[Down] {
		t.Errorf("halved direction chosen %d times vs %d for a full-weight one", counts[Up], counts[Down])
	}
	if counts[Up] == 0 {
		t.Error("halving must not eliminate repeats entirely")
	}
}

func TestPatternModeCycles(t *testing.T) {
	c, t0 := newTestMovement(t, 21)

	if !c.ToggleMovementMode() {
		t.Fatal("first toggle should enter pattern mode")
	}
	stats := c.Stats()
	if stats.Mode != "pattern" {
		t.Errorf("Mode = %q, want pattern", stats.Mode)
	}
	seq, ok := movementPatterns[stats.CurrentPattern]
	if !ok {
		t.Fatalf("unknown pattern %q", stats.CurrentPattern)
	}

	// Wander must walk the sequence in order, twice around
	now := t0
	for i := 0; i < len(seq)*2; i++ {
		c.Wander(now)
		if c.Direction() != seq[i%len(seq)] {
			t.Fatalf("step %d: direction %v, want %v", i, c.Direction(), seq[i%len(seq)])
		}
		now = now.Add(time.Second)
		c.Update(now)
	}

	if c.ToggleMovementMode() {
		t.Error("second toggle should leave pattern mode")
	}
	if got := c.Stats(); got.Mode != "random" || got.CurrentPattern != "" {
		t.Errorf("after leaving: mode %q pattern %q", got.Mode, got.CurrentPattern)
	}
}

func TestWanderIgnoredWhileMoving(t *testing.T) {
	c, t0 := newTestMovement(t, 8)

	c.Look(t0, Right)
	before := c.Stats()
	c.Wander(t0.Add(10 * time.Millisecond))
	after := c.Stats()

	if len(after.Recent) != len(before.Recent) {
		t.Error("Wander during movement should be a no-op")
	}
}

func TestStatsIsACopy(t *testing.T) {
	c, t0 := newTestMovement(t, 6)
	c.Look(t0, Left)

	stats := c.Stats()
	stats.Counts[Left] = 1000
	stats.Recent[0] = DownRight

	fresh := c.Stats()
	if fresh.Counts[Left] != 1 {
		t.Errorf("Counts[left] = %d after mutating a copy, want 1", fresh.Counts[Left])
	}
	if fresh.Recent[0] != Left {
		t.Errorf("Recent[0] = %v after mutating a copy, want left", fresh.Recent[0])
	}
}

func TestDirectionOffsets(t *testing.T) {
	tests := []struct {
		dir  Direction
		x, y float64
	}{
		{Center, 0, 0},
		{Up, 0, -parameter.MoveAmount},
		{Down, 0, parameter.MoveAmount},
		{Left, -parameter.MoveAmount, 0},
		{Right, parameter.MoveAmount, 0},
		{UpLeft, -parameter.MoveAmount, -parameter.MoveAmount},
		{DownRight, parameter.MoveAmount, parameter.MoveAmount},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got := tt.dir.Offset()
			if got.X != tt.x || got.Y != tt.y {
				t.Errorf("Offset() = %v, want {%v %v}", got, tt.x, tt.y)
			}
		})
	}
}

func TestMoveDurationWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	t0 := time.Now()
	for i := 0; i < 100; i++ {
		c := NewMovementController(
			parameter.DefaultEyeWidth, parameter.DefaultEyeHeight, parameter.DefaultEyeSpacing,
			parameter.ScreenWidth, parameter.ScreenHeight, rng, t0)
		c.Look(t0, Up)

		lo := time.Duration(0.8 * float64(parameter.MoveDuration))
		hi := time.Duration(1.2 * float64(parameter.MoveDuration))
		if c.duration < lo || c.duration > hi {
			t.Fatalf("duration %v outside [%v, %v]", c.duration, lo, hi)
		}
	}
}
