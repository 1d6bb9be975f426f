// Package render paints eye snapshots into terminal cell buffers.
// The engine animates on a virtual 800×600 canvas; this package maps
// that canvas onto whatever cell grid the terminal provides.
package render

import (
	"fmt"
	"math"

	"github.com/lixenwraith/robo-eyes/eyes"
	"github.com/lixenwraith/robo-eyes/parameter"
	"github.com/lixenwraith/robo-eyes/terminal"
)

// Config selects frame overlays.
type Config struct {
	ShowGrid bool
	ShowHUD  bool
	Stats    *eyes.MovementStats // non-nil draws the stats overlay
}

// Frame composes one full frame into cells (w×h). Pass order matters:
// glow first so eye bodies paint over it, overlays last.
func Frame(cells []terminal.Cell, w, h int, snap eyes.Snapshot, cfg Config) {
	if w <= 0 || h <= 0 {
		return
	}

	sx := float64(w) / float64(parameter.ScreenWidth)
	sy := float64(h) / float64(parameter.ScreenHeight)

	if cfg.ShowGrid {
		drawGrid(cells, w, h)
	}

	drawGlow(cells, w, h, snap.Left, snap, sx, sy)
	drawGlow(cells, w, h, snap.Right, snap, sx, sy)

	drawEye(cells, w, h, snap.Left, snap, sx, sy)
	drawEye(cells, w, h, snap.Right, snap, sx, sy)

	if cfg.ShowHUD {
		drawHUD(cells, w, h, snap)
	}
	if cfg.Stats != nil {
		drawStats(cells, w, h, *cfg.Stats)
	}
}

// drawGlow paints the halo behind one eye: cubic radial falloff,
// scaled by glow intensity, added onto the background.
func drawGlow(cells []terminal.Cell, w, h int, eye eyes.EyeShape, snap eyes.Snapshot, sx, sy float64) {
	if snap.GlowIntensity <= 0 || eye.Height <= 0 {
		return
	}

	cx := (eye.Pos.X + eye.Width/2) * sx
	cy := (eye.Pos.Y + snap.BounceOffset + eye.Height/2) * sy

	rx := (eye.Width/2 + float64(snap.GlowRadius)*2.5) * sx
	ry := (eye.Height/2 + float64(snap.GlowRadius)*2.5) * sy
	if rx < 1 || ry < 1 {
		return
	}

	strength := float64(snap.GlowIntensity) / float64(parameter.MaxGlowIntensity) * 0.65
	invRxSq := 1.0 / (rx * rx)
	invRySq := 1.0 / (ry * ry)

	startX := clampIdx(int(cx-rx)-1, w)
	endX := clampIdx(int(cx+rx)+1, w)
	startY := clampIdx(int(cy-ry)-1, h)
	endY := clampIdx(int(cy+ry)+1, h)

	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			distSq := dx*dx*invRxSq + dy*dy*invRySq
			if distSq > 1.0 {
				continue
			}
			falloff := 1.0 - math.Sqrt(distSq)
			alpha := falloff * falloff * falloff * strength
			if alpha < 0.01 {
				continue
			}
			idx := y*w + x
			cells[idx].Bg = cells[idx].Bg.Add(snap.Colors.Glow.Scale(alpha))
		}
	}
}

// drawEye paints one eye body: secondary border ring around a primary
// ellipse, with the happy-crescent cut removing the lower bulge.
func drawEye(cells []terminal.Cell, w, h int, eye eyes.EyeShape, snap eyes.Snapshot, sx, sy float64) {
	if eye.Height <= 0 || eye.Width <= 0 {
		return
	}

	cx := (eye.Pos.X + eye.Width/2) * sx
	cy := (eye.Pos.Y + snap.BounceOffset + eye.Height/2) * sy

	innerRx := eye.Width / 2 * sx
	innerRy := eye.Height / 2 * sy
	border := float64(snap.BorderThickness)
	outerRx := (eye.Width/2 + border) * sx
	outerRy := (eye.Height/2 + border) * sy

	if outerRx < 0.5 {
		outerRx = 0.5
	}
	if outerRy < 0.5 {
		outerRy = 0.5
	}
	if innerRy < 0.25 {
		innerRy = 0.25
	}

	// Crescent only shows while the lid is mostly open
	cutCrescent := snap.CrescentCurve > 0 && snap.BlinkOpen > 0.3

	// Mask ellipse: 1.2× width, shifted down half the eye height
	maskRx := eye.Width * 1.2 / 2 * sx
	maskRy := eye.Height / 2 * sy
	maskCy := cy + eye.Height*0.5*sy*snap.CrescentCurve

	startX := clampIdx(int(cx-outerRx)-1, w)
	endX := clampIdx(int(cx+outerRx)+1, w)
	startY := clampIdx(int(cy-outerRy)-1, h)
	endY := clampIdx(int(cy+outerRy)+1, h)

	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy

			outer := dx*dx/(outerRx*outerRx) + dy*dy/(outerRy*outerRy)
			if outer > 1 {
				continue
			}

			if cutCrescent {
				mdy := float64(y) - maskCy
				if dx*dx/(maskRx*maskRx)+mdy*mdy/(maskRy*maskRy) <= 1 {
					continue
				}
			}

			idx := y*w + x
			inner := dx*dx/(innerRx*innerRx) + dy*dy/(innerRy*innerRy)
			if inner <= 1 {
				cells[idx] = terminal.Cell{Rune: ' ', Bg: snap.Colors.Primary}
			} else {
				cells[idx] = terminal.Cell{Rune: ' ', Bg: snap.Colors.Secondary}
			}
		}
	}
}

// drawGrid overlays a 3×3 reference grid across the middle 90% of the
// screen.
func drawGrid(cells []terminal.Cell, w, h int) {
	gridW := float64(w) * 0.9
	gridH := float64(h) * 0.9
	startX := (float64(w) - gridW) / 2
	startY := (float64(h) - gridH) / 2

	for i := 1; i < 3; i++ {
		x := int(startX + float64(i)*gridW/3)
		for y := int(startY); y < int(startY+gridH); y++ {
			if x >= 0 && x < w && y >= 0 && y < h {
				cells[y*w+x] = terminal.Cell{Rune: '│', Fg: terminal.DimGray, Bg: terminal.Black, Attrs: terminal.AttrDim}
			}
		}
		y := int(startY + float64(i)*gridH/3)
		for x := int(startX); x < int(startX+gridW); x++ {
			if x >= 0 && x < w && y >= 0 && y < h {
				cells[y*w+x] = terminal.Cell{Rune: '─', Fg: terminal.DimGray, Bg: terminal.Black, Attrs: terminal.AttrDim}
			}
		}
	}
}

func drawHUD(cells []terminal.Cell, w, h int, snap eyes.Snapshot) {
	status := fmt.Sprintf(" mood:%s  gaze:%s  scheme:%s  glow:%d/%d  border:%d ",
		snap.Mood, snap.Direction, snap.Scheme,
		snap.GlowRadius, snap.GlowIntensity, snap.BorderThickness)
	DrawText(cells, w, h, max(0, (w-len(status))/2), h-1, status, terminal.SlateGray, terminal.AttrDim)
}

func drawStats(cells []terminal.Cell, w, h int, stats eyes.MovementStats) {
	line := 1
	DrawText(cells, w, h, 2, line, fmt.Sprintf("mode: %s", stats.Mode), terminal.White, terminal.AttrBold)
	line++
	if stats.CurrentPattern != "" {
		DrawText(cells, w, h, 2, line, fmt.Sprintf("pattern: %s", stats.CurrentPattern), terminal.White, terminal.AttrNone)
		line++
	}
	for d := 0; d < eyes.DirectionCount; d++ {
		dir := eyes.Direction(d)
		DrawText(cells, w, h, 2, line, fmt.Sprintf("%-10s %d", dir, stats.Counts[dir]), terminal.DimGray, terminal.AttrNone)
		line++
	}

	recent := "recent:"
	for _, d := range stats.Recent {
		recent += " " + d.String()
	}
	DrawText(cells, w, h, 2, line, recent, terminal.DimGray, terminal.AttrDim)
}

// DrawText writes a string at x,y clipped to the buffer.
func DrawText(cells []terminal.Cell, w, h, x, y int, text string, fg terminal.RGB, attr terminal.Attr) {
	if y < 0 || y >= h {
		return
	}
	col := x
	for _, r := range text {
		if col >= 0 && col < w {
			cells[y*w+col] = terminal.Cell{Rune: r, Fg: fg, Bg: terminal.Black, Attrs: attr}
		}
		col++
	}
}

func clampIdx(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
