// Package terminal provides a cell-buffer screen abstraction over tcell.
// Renderers compose frames as []Cell and flush them in one pass.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps a tcell screen with buffer-oriented drawing
type Screen struct {
	s tcell.Screen
}

// New initializes the terminal in raw mode with a hidden cursor.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Screen{s: s}, nil
}

// Fini restores the terminal. Safe to call once at shutdown.
func (sc *Screen) Fini() {
	sc.s.Fini()
}

// Size returns the current terminal dimensions in cells.
func (sc *Screen) Size() (int, int) {
	return sc.s.Size()
}

// PollEvent blocks for the next input, resize, or posted event.
func (sc *Screen) PollEvent() tcell.Event {
	return sc.s.PollEvent()
}

// PostTick queues an interrupt event; the frame loop treats it as a
// render tick. Used by the driver's ticker goroutine.
func (sc *Screen) PostTick() {
	sc.s.PostEvent(tcell.NewEventInterrupt(nil))
}

// Sync forces a full repaint, needed after a resize.
func (sc *Screen) Sync() {
	sc.s.Sync()
}

// Flush writes a full cell buffer to the terminal and shows it.
// Buffers smaller than the terminal leave the remainder untouched.
func (sc *Screen) Flush(cells []Cell, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			if c.Attrs&AttrBold != 0 {
				style = style.Bold(true)
			}
			if c.Attrs&AttrDim != 0 {
				style = style.Dim(true)
			}
			sc.s.SetContent(x, y, c.Rune, nil, style)
		}
	}
	sc.s.Show()
}
