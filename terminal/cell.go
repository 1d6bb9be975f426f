package terminal

// Attr holds display attribute flags for a cell
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
)

// Cell is one character cell in a frame buffer
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// NewBuffer allocates a cleared w×h cell buffer with black background
func NewBuffer(w, h int) []Cell {
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Bg: Black}
	}
	return cells
}
