package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/robo-eyes/eyes"
	"github.com/lixenwraith/robo-eyes/vmath"
)

func snapshotAt(x float64) eyes.Snapshot {
	return eyes.Snapshot{
		Left:  eyes.EyeShape{Pos: vmath.Vec2{X: x, Y: 150}, Width: 300, Height: 300},
		Right: eyes.EyeShape{Pos: vmath.Vec2{X: x + 340, Y: 150}, Width: 300, Height: 300},
	}
}

func countLines(buf *bytes.Buffer) int {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return 0
	}
	return len(strings.Split(s, "\n"))
}

func TestStateFirstSnapshotAlwaysLogs(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(&buf)

	o.State(snapshotAt(80))
	if countLines(&buf) != 1 {
		t.Fatalf("first snapshot produced %d lines, want 1", countLines(&buf))
	}
}

func TestStateFiltersSmallChanges(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(&buf)

	o.State(snapshotAt(80))
	o.State(snapshotAt(85)) // 5px, below the 10px threshold
	o.State(snapshotAt(89))

	if got := countLines(&buf); got != 1 {
		t.Errorf("small moves produced %d lines, want 1", got)
	}

	o.State(snapshotAt(95)) // 15px from the last LOGGED position
	if got := countLines(&buf); got != 2 {
		t.Errorf("large move produced %d lines, want 2", got)
	}
}

func TestStateLogsMoodFlips(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(&buf)

	o.State(snapshotAt(80))

	snap := snapshotAt(80)
	snap.Mood = eyes.MoodHappy
	o.State(snap)

	if got := countLines(&buf); got != 2 {
		t.Errorf("mood flip produced %d lines, want 2", got)
	}
	if !strings.Contains(buf.String(), `"mood":"happy"`) {
		t.Error("mood flip line missing mood field")
	}
}

func TestStateLogsBlinkFlips(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(&buf)

	o.State(snapshotAt(80))

	snap := snapshotAt(80)
	snap.Blinking = true
	o.State(snap)
	o.State(snap) // same blink state, no new line

	if got := countLines(&buf); got != 2 {
		t.Errorf("blink flip produced %d lines, want 2", got)
	}
}

func TestStateLogsSizeChanges(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(&buf)

	o.State(snapshotAt(80))

	snap := snapshotAt(80)
	snap.Left.Width = 350 // well past the 5px threshold
	snap.Right.Width = 350
	o.State(snap)

	if got := countLines(&buf); got != 2 {
		t.Errorf("size change produced %d lines, want 2", got)
	}
}

func TestEventLogsDebugLine(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(&buf)

	o.Event("mood", "mood changed to happy")

	out := buf.String()
	if !strings.Contains(out, `"event":"mood"`) {
		t.Errorf("missing event field in %q", out)
	}
	if !strings.Contains(out, "mood changed to happy") {
		t.Errorf("missing detail in %q", out)
	}
	if !strings.Contains(out, `"app":"robo-eyes"`) {
		t.Errorf("missing app field in %q", out)
	}
}

func TestNewFileObserver(t *testing.T) {
	dir := t.TempDir()

	o, f, err := NewFileObserver(dir)
	if err != nil {
		t.Fatalf("NewFileObserver: %v", err)
	}
	defer f.Close()

	o.Event("test", "hello")
	if err := f.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty after Event")
	}
	if !strings.HasPrefix(info.Name(), "robo-eyes_") {
		t.Errorf("log file name %q missing prefix", info.Name())
	}
}
