package render

import (
	"testing"

	"github.com/lixenwraith/robo-eyes/eyes"
	"github.com/lixenwraith/robo-eyes/parameter/visual"
	"github.com/lixenwraith/robo-eyes/terminal"
	"github.com/lixenwraith/robo-eyes/vmath"
)

func testSnapshot() eyes.Snapshot {
	return eyes.Snapshot{
		Left:          eyes.EyeShape{Pos: vmath.Vec2{X: 80, Y: 150}, Width: 300, Height: 300},
		Right:         eyes.EyeShape{Pos: vmath.Vec2{X: 420, Y: 150}, Width: 300, Height: 300},
		BlinkOpen:     1,
		Scheme:        visual.SchemeCyber,
		Colors:        visual.SchemeCyber.Colors(),
		GlowRadius:    20,
		GlowIntensity: 128,
	}
}

func TestFramePaintsEyes(t *testing.T) {
	const w, h = 80, 24
	cells := terminal.NewBuffer(w, h)

	Frame(cells, w, h, testSnapshot(), Config{})

	painted := 0
	for _, c := range cells {
		if !c.Bg.Equal(terminal.Black) {
			painted++
		}
	}
	if painted == 0 {
		t.Error("frame painted nothing")
	}
}

func TestFrameToleratesDegenerateSizes(t *testing.T) {
	snap := testSnapshot()

	// Must not panic or index out of range
	Frame(nil, 0, 0, snap, Config{})
	Frame(terminal.NewBuffer(1, 1), 1, 1, snap, Config{ShowGrid: true, ShowHUD: true})

	closed := snap
	closed.BlinkOpen = 0
	closed.Left.Height = 0
	closed.Right.Height = 0
	Frame(terminal.NewBuffer(80, 24), 80, 24, closed, Config{})
}

func TestFrameOverlays(t *testing.T) {
	const w, h = 80, 24
	snap := testSnapshot()
	stats := eyes.MovementStats{Mode: "random", Counts: map[eyes.Direction]int{}}

	plain := terminal.NewBuffer(w, h)
	Frame(plain, w, h, snap, Config{})

	full := terminal.NewBuffer(w, h)
	Frame(full, w, h, snap, Config{ShowGrid: true, ShowHUD: true, Stats: &stats})

	diff := 0
	for i := range full {
		if full[i] != plain[i] {
			diff++
		}
	}
	if diff == 0 {
		t.Error("overlays changed no cells")
	}
}

func TestDrawTextClips(t *testing.T) {
	const w, h = 10, 3
	cells := terminal.NewBuffer(w, h)

	DrawText(cells, w, h, 8, 1, "hello", terminal.White, terminal.AttrNone)
	DrawText(cells, w, h, -2, 0, "hi", terminal.White, terminal.AttrNone)
	DrawText(cells, w, h, 0, 5, "off screen", terminal.White, terminal.AttrNone)

	if cells[1*w+8].Rune != 'h' || cells[1*w+9].Rune != 'e' {
		t.Error("clipped text not written inside the buffer")
	}
	if cells[0].Rune == 'h' {
		t.Error("negative x start should clip leading runes")
	}
}

func TestDrawTextMultibyte(t *testing.T) {
	const w, h = 10, 1
	cells := terminal.NewBuffer(w, h)

	// Multi-byte runes occupy one cell each, not one per byte
	DrawText(cells, w, h, 0, 0, "é─x", terminal.White, terminal.AttrNone)

	want := []rune{'é', '─', 'x'}
	for i, r := range want {
		if cells[i].Rune != r {
			t.Errorf("cells[%d].Rune = %q, want %q", i, cells[i].Rune, r)
		}
	}
	if cells[3].Rune != ' ' {
		t.Errorf("cells[3].Rune = %q, want untouched blank", cells[3].Rune)
	}
}

func TestCrescentHiddenWhileBlinking(t *testing.T) {
	const w, h = 80, 24

	open := testSnapshot()
	open.CrescentCurve = 1

	blinking := open
	blinking.BlinkOpen = 0.2 // below the 0.3 visibility cutoff

	a := terminal.NewBuffer(w, h)
	Frame(a, w, h, open, Config{})

	b := terminal.NewBuffer(w, h)
	Frame(b, w, h, blinking, Config{})

	primary := open.Colors.Primary
	countPrimary := func(cells []terminal.Cell) int {
		n := 0
		for _, c := range cells {
			if c.Bg.Equal(primary) {
				n++
			}
		}
		return n
	}

	// The crescent cut removes fill; with the cut suppressed during a
	// blink the same shape paints at least as many primary cells
	if countPrimary(b) < countPrimary(a) {
		t.Error("blinking frame painted fewer primary cells than the crescent-cut frame")
	}
}
