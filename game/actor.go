package game

import (
	"time"

	"github.com/lixenwraith/tako/maze"
)

// Vec is a continuous position used for rendering between grid cells
type Vec struct {
	X, Y float64
}

// Actor is a grid-aligned entity animating from Cell toward Target.
// Progress runs 0..1 over one step interval and is only a presentation value.
type Actor struct {
	Cell     maze.Point
	Target   maze.Point
	Progress float64
}

func newActor(p maze.Point) Actor {
	return Actor{Cell: p, Target: p}
}

// Animate advances Progress by dt relative to the step interval, clamped to [0,1]
func (a *Actor) Animate(dt, interval time.Duration) {
	if interval <= 0 {
		a.Progress = 1
		return
	}
	a.Progress += float64(dt) / float64(interval)
	a.Progress = clamp01(a.Progress)
}

// Snap completes the previous move
func (a *Actor) Snap() {
	a.Cell = a.Target
}

// MoveTo starts a new move toward p
func (a *Actor) MoveTo(p maze.Point) {
	a.Target = p
	a.Progress = 0
}

// Position linearly interpolates between Cell and Target
func (a *Actor) Position() Vec {
	t := a.Progress
	return Vec{
		X: float64(a.Cell.X)*(1-t) + float64(a.Target.X)*t,
		Y: float64(a.Cell.Y)*(1-t) + float64(a.Target.Y)*t,
	}
}

// Player is the input-driven actor
type Player struct {
	Actor
	Facing Direction
}

// Enemy is an AI-driven actor
type Enemy struct {
	Actor
	Facing Direction
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
