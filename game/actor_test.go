package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/tako/maze"
)

func TestActor_AnimateClamps(t *testing.T) {
	a := newActor(maze.Point{X: 2, Y: 3})
	a.MoveTo(maze.Point{X: 3, Y: 3})

	a.Animate(250*time.Millisecond, DefaultStepInterval)
	if a.Progress != 0.5 {
		t.Errorf("Progress = %v, want 0.5", a.Progress)
	}
	pos := a.Position()
	if pos.X != 2.5 || pos.Y != 3 {
		t.Errorf("Position = %+v, want {2.5 3}", pos)
	}

	a.Animate(time.Second, DefaultStepInterval)
	if a.Progress != 1 {
		t.Errorf("Progress should clamp to 1, got %v", a.Progress)
	}
	if pos := a.Position(); pos.X != 3 {
		t.Errorf("Position at full progress = %+v", pos)
	}

	a.Animate(-10*time.Second, DefaultStepInterval)
	if a.Progress != 0 {
		t.Errorf("Progress should clamp to 0, got %v", a.Progress)
	}
}

func TestActor_SnapAndMove(t *testing.T) {
	a := newActor(maze.Point{X: 1, Y: 1})
	a.MoveTo(maze.Point{X: 1, Y: 2})
	a.Animate(DefaultStepInterval, DefaultStepInterval)

	a.Snap()
	if a.Cell != (maze.Point{X: 1, Y: 2}) {
		t.Errorf("Snap left Cell at %v", a.Cell)
	}

	a.MoveTo(maze.Point{X: 2, Y: 2})
	if a.Progress != 0 {
		t.Error("MoveTo must reset progress")
	}
}
