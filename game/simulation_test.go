package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/tako/maze"
)

func newTestSim(t *testing.T, layout string, d Difficulty) *Simulation {
	t.Helper()
	cfg := DefaultConfig(d)
	cfg.Layout = layout
	s, err := New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func eventTypes(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func TestNew_Errors(t *testing.T) {
	cfg := DefaultConfig(Playable)
	cfg.Layout = "###\n# #\n###"
	if _, err := New(cfg, nil); !errors.Is(err, maze.ErrMissingPlayerSpawn) {
		t.Errorf("Expected ErrMissingPlayerSpawn, got %v", err)
	}

	cfg = DefaultConfig(Playable)
	cfg.StepInterval = 0
	if _, err := New(cfg, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestSimulation_AdvanceCadence(t *testing.T) {
	s := newTestSim(t, maze.DefaultLayout, Playable)

	if s.Advance(100 * time.Millisecond) {
		t.Error("tick fired early")
	}
	if !s.Advance(400 * time.Millisecond) {
		t.Error("tick did not fire at the step interval")
	}
	if s.Advance(499 * time.Millisecond) {
		t.Error("tick fired below the step interval")
	}
}

func TestSimulation_PlayerBlocked(t *testing.T) {
	s := newTestSim(t, "###\n#T#\n###", Playable)
	start := s.Player().Cell

	for _, d := range []Direction{Up, Down, Left, Right} {
		s.SetPlayerFacing(d)
		for i := 0; i < 3; i++ {
			s.Advance(DefaultStepInterval)
			p := s.Player()
			if p.Target != p.Cell || p.Cell != start {
				t.Fatalf("player moved facing %v: cell %v target %v", d, p.Cell, p.Target)
			}
		}
	}
}

func TestSimulation_PlayerMoves(t *testing.T) {
	s := newTestSim(t, "#####\n#T  #\n#####", Playable)
	s.SetPlayerFacing(Right)

	s.Advance(DefaultStepInterval)
	p := s.Player()
	if p.Cell != (maze.Point{X: 1, Y: 1}) || p.Target != (maze.Point{X: 2, Y: 1}) {
		t.Fatalf("after first tick cell %v target %v", p.Cell, p.Target)
	}

	// Halfway through the next interval the player renders between cells
	s.Update(250 * time.Millisecond)
	if pos := s.Snapshot().Player.Position; pos.X != 1.5 {
		t.Errorf("interpolated X = %v, want 1.5", pos.X)
	}
}

func TestSimulation_Win(t *testing.T) {
	s := newTestSim(t, "####\n#T #\n####", Hard)
	s.SetPlayerFacing(Right)

	s.Advance(DefaultStepInterval) // start moving onto the only pickup
	if s.Outcome().Active() {
		t.Fatal("outcome before reaching the pickup")
	}
	s.Advance(DefaultStepInterval) // arrive

	out := s.Outcome()
	if out.Kind != OutcomeWin || out.Remaining != 5*time.Second {
		t.Fatalf("outcome = %+v, want win with 5s", out)
	}
	if s.Intensity() != 0.2 {
		t.Errorf("intensity = %v, want doubled to 0.2", s.Intensity())
	}
	if s.Stats().Wins != 1 {
		t.Errorf("wins = %d", s.Stats().Wins)
	}

	// Level was reset
	if len(s.Pickups()) != 1 || s.Player().Cell != (maze.Point{X: 1, Y: 1}) {
		t.Errorf("level not reset: pickups %v player %v", s.Pickups(), s.Player().Cell)
	}

	got := eventTypes(s.Events())
	if len(got) != 2 || got[0] != EventPickup || got[1] != EventWin {
		t.Errorf("events = %v, want [pickup win]", got)
	}
}

func TestSimulation_Lose(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		intensity  float64
	}{
		{Hard, 0.05},
		{Takodachi, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			// The enemy's only open move is onto the player
			s := newTestSim(t, "####\n#TM#\n####", tt.difficulty)

			s.Advance(DefaultStepInterval)
			if s.Outcome().Active() {
				t.Fatal("lost before the enemy arrived")
			}
			s.Advance(DefaultStepInterval)

			out := s.Outcome()
			if out.Kind != OutcomeLose || out.Remaining != 10*time.Second {
				t.Fatalf("outcome = %+v, want lose with 10s", out)
			}
			if s.Intensity() != tt.intensity {
				t.Errorf("intensity = %v, want %v", s.Intensity(), tt.intensity)
			}
			if e := s.Enemies(); e[0].Cell != (maze.Point{X: 2, Y: 1}) {
				t.Errorf("enemy not reset: %v", e[0].Cell)
			}
		})
	}
}

func TestSimulation_OutcomeSuspendsPlay(t *testing.T) {
	s := newTestSim(t, "####\n#T #\n####", Playable)
	s.SetPlayerFacing(Right)
	s.Advance(DefaultStepInterval)
	s.Advance(DefaultStepInterval)
	s.Events()

	if !s.Outcome().Active() {
		t.Fatal("expected win outcome")
	}

	// Input is ignored and nothing ticks during the countdown
	s.SetPlayerFacing(Left)
	for i := 0; i < 9; i++ {
		s.Update(500 * time.Millisecond)
	}
	if s.Player().Facing != Right {
		t.Errorf("facing = %v during countdown, want the held right", s.Player().Facing)
	}
	if s.Player().Target != s.Player().Cell {
		t.Error("player moved during countdown")
	}
	if len(s.Events()) != 0 {
		t.Error("events fired during countdown")
	}

	s.Update(500 * time.Millisecond)
	if s.Outcome().Active() {
		t.Fatal("countdown did not expire after 5s")
	}
	got := eventTypes(s.Events())
	if len(got) != 1 || got[0] != EventOutcomeExpired {
		t.Errorf("events = %v, want [outcome_expired]", got)
	}

	s.SetPlayerFacing(Left)
	if s.Player().Facing != Left {
		t.Error("input still ignored after countdown")
	}
}

func TestSimulation_ReturnToMenu(t *testing.T) {
	s := newTestSim(t, maze.DefaultLayout, Playable)
	if s.ReturnRequested() {
		t.Fatal("fresh game requests return")
	}
	s.RequestReturnToMenu()
	if !s.ReturnRequested() {
		t.Error("return not recorded")
	}
}

func TestSimulation_ReturnIgnoredDuringCountdown(t *testing.T) {
	s := newTestSim(t, "####\n#T #\n####", Playable)
	s.SetPlayerFacing(Right)
	s.Advance(DefaultStepInterval)
	s.Advance(DefaultStepInterval)
	if !s.Outcome().Active() {
		t.Fatal("expected win outcome")
	}

	s.RequestReturnToMenu()
	if s.ReturnRequested() {
		t.Error("return accepted during countdown")
	}

	s.Update(DefaultWinCountdown)
	if s.Outcome().Active() {
		t.Fatal("countdown did not expire")
	}
	s.RequestReturnToMenu()
	if !s.ReturnRequested() {
		t.Error("return not recorded after countdown")
	}
}

func TestSimulation_SnapshotIsACopy(t *testing.T) {
	s := newTestSim(t, maze.DefaultLayout, Playable)
	snap := s.Snapshot()

	if snap.Width != 18 || snap.Height != 14 {
		t.Errorf("snapshot size %dx%d", snap.Width, snap.Height)
	}
	if len(snap.Enemies) != 3 || len(snap.Pickups) != snap.TotalPickups {
		t.Errorf("snapshot enemies %d pickups %d/%d", len(snap.Enemies), len(snap.Pickups), snap.TotalPickups)
	}

	snap.Pickups[0] = maze.Point{X: -1, Y: -1}
	if s.Pickups()[0] == (maze.Point{X: -1, Y: -1}) {
		t.Error("snapshot shares pickup storage with the simulation")
	}

	snap.Walls[0] = maze.Point{X: -9, Y: -9}
	if s.Snapshot().Walls[0] == (maze.Point{X: -9, Y: -9}) {
		t.Error("snapshot shares wall storage with the simulation")
	}
}

func TestSimulation_ResetKeepsHeldFacing(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   OutcomeKind
	}{
		{"win", "####\n#T #\n####", OutcomeWin},
		{"lose", "#####\n#T M#\n#####", OutcomeLose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, tt.layout, Hard)
			s.SetPlayerFacing(Right)
			for i := 0; i < 4 && !s.Outcome().Active(); i++ {
				s.Advance(DefaultStepInterval)
			}

			if got := s.Outcome().Kind; got != tt.want {
				t.Fatalf("outcome = %v, want %v", got, tt.want)
			}
			if got := s.Player().Facing; got != Right {
				t.Errorf("player facing after reset = %v, want right", got)
			}
			for _, e := range s.Enemies() {
				if e.Facing != Up {
					t.Errorf("enemy facing after reset = %v, want up", e.Facing)
				}
			}
		})
	}
}

func TestSimulation_DefaultLayoutRunsLong(t *testing.T) {
	// Enemies must never end up inside a wall over a long run
	s := newTestSim(t, maze.DefaultLayout, Takodachi)
	grid := s.Grid()

	for i := 0; i < 2000; i++ {
		s.SetPlayerFacing(Direction(i / 7 % 4))
		s.Update(100 * time.Millisecond)
		for _, e := range s.Enemies() {
			if grid.IsWall(e.Cell.X, e.Cell.Y) || grid.IsWall(e.Target.X, e.Target.Y) {
				t.Fatalf("enemy in wall at step %d: %+v", i, e)
			}
		}
		p := s.Player()
		if grid.IsWall(p.Target.X, p.Target.Y) {
			t.Fatalf("player target in wall at step %d", i)
		}
	}
}
