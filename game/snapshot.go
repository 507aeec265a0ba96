package game

import "github.com/lixenwraith/tako/maze"

// ActorView is the render-facing state of one actor
type ActorView struct {
	Position Vec // interpolated
	Cell     maze.Point
	Facing   Direction
}

// Snapshot is a read-only copy of everything a renderer or HUD needs for one frame
type Snapshot struct {
	Width, Height int

	Walls   []maze.Point
	Pickups []maze.Point

	Player  ActorView
	Enemies []ActorView

	Outcome      Outcome
	Intensity    float64
	Difficulty   Difficulty
	Stats        Stats
	TotalPickups int
}

// Snapshot captures the current frame state
func (s *Simulation) Snapshot() Snapshot {
	w, h := s.grid.Size()
	snap := Snapshot{
		Width:        w,
		Height:       h,
		Walls:        append([]maze.Point(nil), s.walls...),
		Pickups:      s.Pickups(),
		Player:       viewOf(&s.player.Actor, s.player.Facing),
		Enemies:      make([]ActorView, len(s.enemies)),
		Outcome:      s.outcome,
		Intensity:    s.intensity,
		Difficulty:   s.cfg.Difficulty,
		Stats:        s.stats,
		TotalPickups: len(s.level.Pickups),
	}
	for i := range s.enemies {
		snap.Enemies[i] = viewOf(&s.enemies[i].Actor, s.enemies[i].Facing)
	}
	return snap
}

func viewOf(a *Actor, facing Direction) ActorView {
	return ActorView{Position: a.Position(), Cell: a.Cell, Facing: facing}
}
