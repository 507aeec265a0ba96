package maze

import (
	"errors"
	"fmt"
)

// DefaultLayout is the stock Tako level
const DefaultLayout = `
##################
#                #
# ######### #  # #
#           #  # #
# ###### ##### # #
# #M     # M   # #
# # #### #  #### #
# # #  #         #
# #       # # ####
# #### #### #    #
#T          # #  #
########### # ####
#M               #
##################
`

// Sentinel errors
var (
	ErrEmptyLayout          = errors.New("maze: empty layout")
	ErrMissingPlayerSpawn   = errors.New("maze: layout has no player spawn")
	ErrMultiplePlayerSpawns = errors.New("maze: layout has more than one player spawn")
	ErrUnknownTile          = errors.New("maze: unknown tile")
)

// Level is the initial configuration derived from a layout
type Level struct {
	Grid    *Grid
	Player  Point
	Enemies []Point
	Pickups []Point
}

// Load parses layout into a fresh Level. It is deterministic, so calling it again
// on the same text is how a round gets reset.
func Load(layout string) (*Level, error) {
	lines := splitLayout(layout)
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}

	lvl := &Level{Grid: Build(layout)}
	spawns := 0
	for y, line := range lines {
		for x, r := range []rune(line) {
			p := Point{x, y}
			switch r {
			case TileWall:
			case TilePlayer:
				spawns++
				lvl.Player = p
			case TileEnemy:
				lvl.Enemies = append(lvl.Enemies, p)
				lvl.Pickups = append(lvl.Pickups, p)
			case TileOpen:
				lvl.Pickups = append(lvl.Pickups, p)
			default:
				return nil, fmt.Errorf("%w %q at %d,%d", ErrUnknownTile, r, x, y)
			}
		}
	}

	switch {
	case spawns == 0:
		return nil, ErrMissingPlayerSpawn
	case spawns > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultiplePlayerSpawns, spawns)
	}
	return lvl, nil
}
