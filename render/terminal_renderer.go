package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tako/game"
)

// Glyphs
const (
	glyphWall   = '█'
	glyphPickup = '•'
	glyphPlayer = 'T'
	glyphEnemy  = 'M'
)

// Terminal cells are about twice as tall as wide; each maze cell spans two columns
const cellColumns = 2

// Reference frame rate the intensity (degrees per frame) is expressed in
const spinFrameRate = 60.0

// Takodachi swings back once the maze has turned this far
const spinLimit = 180.0

// TerminalRenderer draws simulation snapshots onto a tcell screen.
// It owns the maze rotation, which is purely presentational.
type TerminalRenderer struct {
	screen tcell.Screen

	angle   float64 // degrees
	spinDir float64 // +1 or -1

	walls []bool // scratch wall bitmap, row-major
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, spinDir: 1}
}

// Angle returns the current maze rotation in degrees
func (r *TerminalRenderer) Angle() float64 {
	return r.angle
}

// Spin advances the rotation by the snapshot intensity over dt
func (r *TerminalRenderer) Spin(snap *game.Snapshot, dt time.Duration) {
	if snap.Outcome.Active() {
		return
	}
	r.angle += snap.Intensity * r.spinDir * dt.Seconds() * spinFrameRate
	if !snap.Difficulty.Hardest() {
		return
	}
	switch {
	case r.angle > spinLimit && r.spinDir > 0:
		r.spinDir = -1
	case r.angle < -spinLimit && r.spinDir < 0:
		r.spinDir = 1
	}
}

// RenderFrame draws the whole frame and shows it
func (r *TerminalRenderer) RenderFrame(snap *game.Snapshot) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	if snap.Outcome.Active() {
		r.drawOutcome(snap, defaultStyle)
	} else {
		v := r.newView(snap)
		r.drawWalls(snap, v, defaultStyle)
		r.drawPickups(snap, v, defaultStyle)
		for _, e := range snap.Enemies {
			r.drawActor(v, e, glyphEnemy, defaultStyle.Foreground(RgbEnemy).Bold(true))
		}
		r.drawActor(v, snap.Player, glyphPlayer, defaultStyle.Foreground(RgbPlayer).Bold(true))
	}

	r.drawStatusBar(snap, defaultStyle)
	r.screen.Show()
}

// view maps maze coordinates to screen cells through the current rotation
type view struct {
	ox, oy   float64 // screen center
	cx, cy   float64 // maze center
	sin, cos float64
}

func (r *TerminalRenderer) newView(snap *game.Snapshot) view {
	sw, sh := r.screen.Size()
	rad := r.angle * math.Pi / 180
	return view{
		ox:  float64(sw) / 2,
		oy:  float64(sh-1) / 2, // last row is the status bar
		cx:  float64(snap.Width) / 2,
		cy:  float64(snap.Height) / 2,
		sin: math.Sin(rad),
		cos: math.Cos(rad),
	}
}

// project maps the center of maze cell (x, y) to a screen cell; maze +y is screen up
func (v view) project(x, y float64) (int, int) {
	dx := x + 0.5 - v.cx
	dy := y + 0.5 - v.cy
	rx := dx*v.cos - dy*v.sin
	ry := dx*v.sin + dy*v.cos
	sx := v.ox + rx*cellColumns - 1
	sy := v.oy - ry
	return int(math.Floor(sx + 0.5)), int(math.Floor(sy))
}

// unproject maps a screen cell back to the maze cell under it
func (v view) unproject(sx, sy int) (int, int) {
	rx := (float64(sx) + 0.5 - v.ox) / cellColumns
	ry := -(float64(sy) + 0.5 - v.oy)
	dx := rx*v.cos + ry*v.sin
	dy := -rx*v.sin + ry*v.cos
	return int(math.Floor(dx + v.cx)), int(math.Floor(dy + v.cy))
}

func (r *TerminalRenderer) drawWalls(snap *game.Snapshot, v view, defaultStyle tcell.Style) {
	n := snap.Width * snap.Height
	if cap(r.walls) < n {
		r.walls = make([]bool, n)
	}
	r.walls = r.walls[:n]
	clear(r.walls)
	for _, w := range snap.Walls {
		r.walls[w.X+w.Y*snap.Width] = true
	}

	isWall := func(x, y int) bool {
		if x < 0 || x >= snap.Width || y < 0 || y >= snap.Height {
			return false
		}
		return r.walls[x+y*snap.Width]
	}

	// Scan the screen box that can hold the maze at any rotation
	sw, sh := r.screen.Size()
	radius := math.Hypot(float64(snap.Width), float64(snap.Height))/2 + 1
	x0 := max(0, int(v.ox-radius*cellColumns))
	x1 := min(sw-1, int(v.ox+radius*cellColumns))
	y0 := max(0, int(v.oy-radius))
	y1 := min(sh-2, int(v.oy+radius))

	style := defaultStyle.Foreground(RgbWall)
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			if mx, my := v.unproject(sx, sy); isWall(mx, my) {
				r.screen.SetContent(sx, sy, glyphWall, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawPickups(snap *game.Snapshot, v view, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbPickup)
	for _, p := range snap.Pickups {
		r.put(v, float64(p.X), float64(p.Y), glyphPickup, style)
	}
}

func (r *TerminalRenderer) drawActor(v view, a game.ActorView, glyph rune, style tcell.Style) {
	r.put(v, a.Position.X, a.Position.Y, glyph, style)
}

func (r *TerminalRenderer) put(v view, x, y float64, glyph rune, style tcell.Style) {
	sx, sy := v.project(x, y)
	sw, sh := r.screen.Size()
	if sx < 0 || sx >= sw || sy < 0 || sy >= sh-1 {
		return
	}
	r.screen.SetContent(sx, sy, glyph, nil, style)
}

func (r *TerminalRenderer) drawOutcome(snap *game.Snapshot, defaultStyle tcell.Style) {
	sw, sh := r.screen.Size()

	var title string
	bg := RgbLoseBg
	switch snap.Outcome.Kind {
	case game.OutcomeWin:
		title = "ALL COOKIES EATEN!"
		bg = RgbWinBg
	default:
		title = "CAUGHT BY MUMEI!"
	}
	countdown := fmt.Sprintf("next round in %.0fs", math.Ceil(snap.Outcome.Remaining.Seconds()))

	fill := defaultStyle.Background(bg)
	for y := 0; y < sh-1; y++ {
		for x := 0; x < sw; x++ {
			r.screen.SetContent(x, y, ' ', nil, fill)
		}
	}

	banner := fill.Foreground(RgbBanner).Bold(true)
	r.drawText((sw-len(title))/2, sh/2-1, title, banner)
	r.drawText((sw-len(countdown))/2, sh/2+1, countdown, fill.Foreground(RgbBanner))
}

func (r *TerminalRenderer) drawStatusBar(snap *game.Snapshot, defaultStyle tcell.Style) {
	sw, sh := r.screen.Size()
	statusY := sh - 1

	for x := 0; x < sw; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, defaultStyle)
	}

	status := fmt.Sprintf(" %s  cookies %d/%d  wins %d  losses %d ",
		snap.Difficulty, snap.Stats.Collected, snap.TotalPickups, snap.Stats.Wins, snap.Stats.Losses)
	x := r.drawText(0, statusY, status, defaultStyle.Foreground(RgbStatusBar).Bold(true))
	r.drawText(x+1, statusY, "arrows/hjkl move  esc menu  q quit", defaultStyle.Foreground(RgbStatusDim))
}

// drawText writes s from (x, y), clipped to the screen, and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	sw, _ := r.screen.Size()
	for _, ch := range s {
		if x >= 0 && x < sw {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
