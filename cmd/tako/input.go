package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tako/game"
)

var runeDirections = map[rune]game.Direction{
	'k': game.Up, 'w': game.Up,
	'l': game.Right, 'd': game.Right,
	'j': game.Down, 's': game.Down,
	'h': game.Left, 'a': game.Left,
}

var keyDirections = map[tcell.Key]game.Direction{
	tcell.KeyUp:    game.Up,
	tcell.KeyRight: game.Right,
	tcell.KeyDown:  game.Down,
	tcell.KeyLeft:  game.Left,
}

// keyDirection maps arrows, hjkl and wasd to a facing
func keyDirection(ev *tcell.EventKey) (game.Direction, bool) {
	if ev.Key() == tcell.KeyRune {
		d, ok := runeDirections[ev.Rune()]
		return d, ok
	}
	d, ok := keyDirections[ev.Key()]
	return d, ok
}

// handleKey applies one key press to sim and reports whether the player asked to quit
func handleKey(sim *game.Simulation, ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		sim.RequestReturnToMenu()
		return false
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true
		}
	}

	if d, ok := keyDirection(ev); ok {
		sim.SetPlayerFacing(d)
	}
	return false
}
