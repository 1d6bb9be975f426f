package eyes

import (
	"github.com/lixenwraith/robo-eyes/parameter"
	"github.com/lixenwraith/robo-eyes/vmath"
)

// Direction is a compass-style gaze target. It drives both the
// positional offset of a movement and which eye receives the
// directional size boost.
type Direction uint8

const (
	Center Direction = iota
	Up
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight

	DirectionCount = 9
)

var directionNames = [DirectionCount]string{
	"center", "up", "down", "left", "right",
	"up_left", "up_right", "down_left", "down_right",
}

func (d Direction) String() string {
	if int(d) >= DirectionCount {
		return "unknown"
	}
	return directionNames[d]
}

// directionOffsets maps each direction to its base pixel offset.
// Up is negative Y (screen coordinates).
var directionOffsets = [DirectionCount]vmath.Vec2{
	Center:    {X: 0, Y: 0},
	Up:        {X: 0, Y: -parameter.MoveAmount},
	Down:      {X: 0, Y: parameter.MoveAmount},
	Left:      {X: -parameter.MoveAmount, Y: 0},
	Right:     {X: parameter.MoveAmount, Y: 0},
	UpLeft:    {X: -parameter.MoveAmount, Y: -parameter.MoveAmount},
	UpRight:   {X: parameter.MoveAmount, Y: -parameter.MoveAmount},
	DownLeft:  {X: -parameter.MoveAmount, Y: parameter.MoveAmount},
	DownRight: {X: parameter.MoveAmount, Y: parameter.MoveAmount},
}

// Offset returns the unjittered pixel offset for d.
func (d Direction) Offset() vmath.Vec2 {
	if int(d) >= DirectionCount {
		return vmath.Vec2{}
	}
	return directionOffsets[d]
}

// LeansLeft reports whether d looks toward the left side.
func (d Direction) LeansLeft() bool {
	return d == Left || d == UpLeft || d == DownLeft
}

// LeansRight reports whether d looks toward the right side.
func (d Direction) LeansRight() bool {
	return d == Right || d == UpRight || d == DownRight
}

// directionWeights are the base sampling weights for wandering, in
// declaration order: center is favored, downward diagonals are rare.
var directionWeights = [DirectionCount]float64{
	Center:    0.30,
	Up:        0.10,
	Down:      0.10,
	Left:      0.10,
	Right:     0.10,
	UpLeft:    0.10,
	UpRight:   0.10,
	DownLeft:  0.05,
	DownRight: 0.05,
}
