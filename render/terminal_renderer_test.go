package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tako/game"
	"github.com/lixenwraith/tako/maze"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func newSnapshot(t *testing.T, d game.Difficulty) game.Snapshot {
	t.Helper()
	sim, err := game.New(game.DefaultConfig(d), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return sim.Snapshot()
}

// cellAt returns the screen cell the center of maze cell p projects to
func (r *TerminalRenderer) cellAt(snap *game.Snapshot, p maze.Point) (int, int) {
	return r.newView(snap).project(float64(p.X), float64(p.Y))
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenContains(screen tcell.Screen, s string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), s) {
			return true
		}
	}
	return false
}

func TestRenderFrame_DrawsMaze(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	snap := newSnapshot(t, game.Playable)

	r.RenderFrame(&snap)

	x, y := r.cellAt(&snap, maze.Point{X: 0, Y: 0})
	if got, _, _, _ := screen.GetContent(x, y); got != glyphWall {
		t.Errorf("corner wall: got %q at %d,%d, want %q", got, x, y, glyphWall)
	}

	x, y = r.cellAt(&snap, snap.Player.Cell)
	if got, _, _, _ := screen.GetContent(x, y); got != glyphPlayer {
		t.Errorf("player: got %q at %d,%d, want %q", got, x, y, glyphPlayer)
	}

	for _, e := range snap.Enemies {
		x, y = r.cellAt(&snap, e.Cell)
		if got, _, _, _ := screen.GetContent(x, y); got != glyphEnemy {
			t.Errorf("enemy at %v: got %q, want %q", e.Cell, got, glyphEnemy)
		}
	}
}

func TestRenderFrame_StatusBar(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	snap := newSnapshot(t, game.Hard)
	snap.Stats = game.Stats{Wins: 2, Losses: 1, Collected: 7}

	r.RenderFrame(&snap)

	_, h := screen.Size()
	status := rowText(screen, h-1)
	for _, want := range []string{"hard", "cookies 7/", "wins 2", "losses 1"} {
		if !strings.Contains(status, want) {
			t.Errorf("status bar %q missing %q", status, want)
		}
	}
}

func TestRenderFrame_OutcomeOverlay(t *testing.T) {
	tests := []struct {
		kind game.OutcomeKind
		want string
	}{
		{game.OutcomeWin, "ALL COOKIES EATEN!"},
		{game.OutcomeLose, "CAUGHT BY MUMEI!"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			screen := newTestScreen(t)
			r := NewTerminalRenderer(screen)
			snap := newSnapshot(t, game.Playable)
			snap.Outcome = game.Outcome{Kind: tt.kind, Remaining: 2500 * time.Millisecond}

			r.RenderFrame(&snap)

			if !screenContains(screen, tt.want) {
				t.Errorf("overlay text %q not drawn", tt.want)
			}
			if !screenContains(screen, "next round in 3s") {
				t.Error("countdown not drawn")
			}
			x, y := r.cellAt(&snap, snap.Player.Cell)
			if got, _, _, _ := screen.GetContent(x, y); got == glyphPlayer {
				t.Error("maze drawn under the overlay")
			}
		})
	}
}

func TestSpin(t *testing.T) {
	r := NewTerminalRenderer(newTestScreen(t))

	playable := newSnapshot(t, game.Playable)
	r.Spin(&playable, time.Second)
	if r.Angle() != 0 {
		t.Errorf("playable spun to %v", r.Angle())
	}

	hard := newSnapshot(t, game.Hard)
	for i := 0; i < 100; i++ {
		r.Spin(&hard, time.Second)
	}
	// 0.1 deg/frame * 60 frames * 100 s
	if got := r.Angle(); got < 599 || got > 601 {
		t.Errorf("hard angle = %v, want 600", got)
	}

	hard.Outcome = game.Outcome{Kind: game.OutcomeLose, Remaining: time.Second}
	before := r.Angle()
	r.Spin(&hard, time.Second)
	if r.Angle() != before {
		t.Error("maze spun during outcome countdown")
	}
}

func TestSpin_TakodachiSwingsBack(t *testing.T) {
	r := NewTerminalRenderer(newTestScreen(t))
	snap := newSnapshot(t, game.Takodachi)

	maxAbs := 0.0
	for i := 0; i < 600; i++ {
		r.Spin(&snap, 100*time.Millisecond)
		if a := r.Angle(); a > maxAbs {
			maxAbs = a
		} else if -a > maxAbs {
			maxAbs = -a
		}
	}
	// 3.6 degrees per call, so the swing overshoots 180 by at most one step
	if maxAbs > spinLimit+4 {
		t.Errorf("angle reached %v, want at most about %v", maxAbs, spinLimit)
	}
}
