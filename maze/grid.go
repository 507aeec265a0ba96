package maze

import (
	"strings"
)

// Tile runes of the level text format
const (
	TileWall   = '#'
	TileEnemy  = 'M'
	TilePlayer = 'T'
	TileOpen   = ' '
)

// Point is an integer grid coordinate: X is the column, Y the row
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Cell is one grid slot; Wall is set when the slot holds a wall block
type Cell struct {
	Wall bool
}

// Grid is an immutable rectangular wall map built from a level layout
type Grid struct {
	width, height int
	cells         []Cell
}

// Build parses layout into a Grid.
// Lines are trimmed before parsing and every '#' becomes a wall at (column, row).
// The grid spans the bounding box of all parsed characters; other runes are ignored here.
func Build(layout string) *Grid {
	lines := splitLayout(layout)

	width, height := 0, len(lines)
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y, line := range lines {
		for x, r := range []rune(line) {
			if r == TileWall {
				g.cells[x+y*width].Wall = true
			}
		}
	}
	return g
}

// splitLayout trims the whole text, then each line
func splitLayout(layout string) []string {
	layout = strings.TrimSpace(layout)
	if layout == "" {
		return nil
	}
	lines := strings.Split(layout, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// Size returns grid width and height in cells
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// InBounds reports whether (x, y) addresses a grid cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Lookup returns the cell at (x, y), or false when outside the grid.
// Out-of-bounds is an expected outcome of boundary movement checks, not an error.
func (g *Grid) Lookup(x, y int) (*Cell, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g.cells[x+y*g.width], true
}

// Blocked reports whether an actor may not enter (x, y); missing cells are blocked
func (g *Grid) Blocked(x, y int) bool {
	c, ok := g.Lookup(x, y)
	return !ok || c.Wall
}

// IsWall reports whether (x, y) holds a wall; missing cells are not walls
func (g *Grid) IsWall(x, y int) bool {
	c, ok := g.Lookup(x, y)
	return ok && c.Wall
}

// Walls returns wall positions in row-major order
func (g *Grid) Walls() []Point {
	walls := make([]Point, 0, len(g.cells)/2)
	for i, c := range g.cells {
		if c.Wall {
			walls = append(walls, Point{i % g.width, i / g.width})
		}
	}
	return walls
}

// Equal reports whether two grids have the same bounds and wall set
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Truncate converts a continuous coordinate to its tile address, rounding toward zero
func Truncate(x, y float64) (int, int) {
	return int(x), int(y)
}
