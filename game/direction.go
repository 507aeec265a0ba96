package game

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal moves, in clockwise cyclic order
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
	directionCount
)

// Unit vectors per direction; Up grows the row index, matching the bottom-up screen origin
var directionVectors = [directionCount][2]int{
	Up:    {0, 1},
	Right: {1, 0},
	Down:  {0, -1},
	Left:  {-1, 0},
}

var directionNames = [directionCount]string{"up", "right", "down", "left"}

// Turn rotates d by n quarter steps clockwise; negative n turns counter-clockwise
func (d Direction) Turn(n int) Direction {
	return Direction(((int(d)+n)%int(directionCount) + int(directionCount)) % int(directionCount))
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	return d.Turn(2)
}

// Vector returns the grid offset of one step in d
func (d Direction) Vector() (dx, dy int) {
	v := directionVectors[d]
	return v[0], v[1]
}

func (d Direction) String() string {
	if d < 0 || d >= directionCount {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps a direction name to its value
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}
