package game

import (
	"math/rand"

	"github.com/lixenwraith/tako/maze"
)

// Roamer picks enemy moves: keep going, or turn left or right, never reverse unless cornered.
// The random source is injected so runs can be replayed.
type Roamer struct {
	rng *rand.Rand
}

// NewRoamer creates a Roamer drawing from rng
func NewRoamer(rng *rand.Rand) *Roamer {
	return &Roamer{rng: rng}
}

// Choose returns the next facing for an enemy at pos and whether the destination is enterable.
// With every forward candidate blocked the enemy reverses; if the reverse is blocked too it
// only turns around and stays put.
func (r *Roamer) Choose(grid *maze.Grid, pos maze.Point, facing Direction) (Direction, bool) {
	var open [3]Direction
	n := 0
	for turn := -1; turn <= 1; turn++ {
		d := facing.Turn(turn)
		if passable(grid, pos, d) {
			open[n] = d
			n++
		}
	}

	if n > 0 {
		return open[r.rng.Intn(n)], true
	}

	back := facing.Reverse()
	return back, passable(grid, pos, back)
}

// Step moves e one cell using Choose
func (r *Roamer) Step(grid *maze.Grid, e *Enemy) {
	e.Snap()

	dir, ok := r.Choose(grid, e.Cell, e.Facing)
	e.Facing = dir
	if ok {
		e.MoveTo(destination(e.Cell, dir))
	} else {
		e.MoveTo(e.Cell)
	}
}

func destination(p maze.Point, d Direction) maze.Point {
	dx, dy := d.Vector()
	return p.Add(dx, dy)
}

func passable(grid *maze.Grid, p maze.Point, d Direction) bool {
	dst := destination(p, d)
	return !grid.Blocked(dst.X, dst.Y)
}
