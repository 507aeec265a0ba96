package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// Generator cell types
const (
	wall    = true
	passage = false
)

// Spawn placement limits
const (
	minSpawnDistance = 4 // path steps between player spawn and any enemy spawn
	minSpawnSpacing  = 3 // manhattan distance between enemy spawns
)

var ErrLayoutTooSmall = errors.New("maze: generated layout too small")

// GenConfig controls procedural level generation
type GenConfig struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze, one path between any two cells) to 1.0 (no dead ends).
	// Plazas (2x2 open areas) and pillars (isolated walls) are never created.
	Braiding float64

	Enemies int
	Seed    int64 // 0 = random
}

// GenerateLayout creates a braided maze and returns it in the level text format,
// with the player at the top-left room and enemies at the rooms farthest from it.
func GenerateLayout(cfg GenConfig) (string, error) {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)
	if rows < 5 || cols < 5 {
		return "", fmt.Errorf("%w: %dx%d", ErrLayoutTooSmall, cols, rows)
	}

	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
		for j := range grid[i] {
			grid[i][j] = wall
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := Point{1, 1}
	carve(grid, start, rng)
	if cfg.Braiding > 0 {
		braid(grid, cfg.Braiding, rng)
	}

	spawns := placeEnemies(grid, start, cfg.Enemies)

	tiles := make([][]rune, rows)
	for y := range grid {
		tiles[y] = make([]rune, cols)
		for x := range grid[y] {
			if grid[y][x] == wall {
				tiles[y][x] = TileWall
			} else {
				tiles[y][x] = TileOpen
			}
		}
	}
	tiles[start.Y][start.X] = TilePlayer
	for _, p := range spawns {
		tiles[p.Y][p.X] = TileEnemy
	}

	var sb strings.Builder
	for _, row := range tiles {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// carve runs a recursive backtracker over odd cells, producing a uniform spanning tree
func carve(grid [][]bool, start Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	stack := []Point{start}
	grid[start.Y][start.X] = passage

	dirs := []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave a one cell wall border
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] == wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = passage
		grid[curr.Y+d.Y][curr.X+d.X] = passage
		stack = append(stack, Point{curr.X + d.X, curr.Y + d.Y})
	}
}

// braid opens a wall next to dead ends with the given probability, adding cycles
// so enemies do not trap the player in every corridor
func braid(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	ortho := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] == wall {
				continue
			}

			exits := 0
			for _, d := range ortho {
				if grid[y+d.Y][x+d.X] == passage {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]Point, 0, 4)
			for _, d := range ortho {
				nx, ny := x+2*d.X, y+2*d.Y
				wx, wy := x+d.X, y+d.Y
				// Never open the outer border
				if nx <= 0 || nx >= cols-1 || ny <= 0 || ny >= rows-1 {
					continue
				}
				if grid[ny][nx] == passage && grid[wy][wx] == wall && canSafelyRemoveWall(grid, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid[c.Y][c.X] = passage
			}
		}
	}
}

// canSafelyRemoveWall reports whether opening grid[y][x] keeps the maze free of
// plazas (2x2 passages) and pillars (walls with no wall neighbor)
func canSafelyRemoveWall(grid [][]bool, x, y int) bool {
	rows, cols := len(grid), len(grid[0])

	isP := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return grid[ty][tx] == passage
	}

	if isP(x-1, y-1) && isP(x, y-1) && isP(x-1, y) ||
		isP(x, y-1) && isP(x+1, y-1) && isP(x+1, y) ||
		isP(x-1, y) && isP(x-1, y+1) && isP(x, y+1) ||
		isP(x+1, y) && isP(x, y+1) && isP(x+1, y+1) {
		return false
	}

	ortho := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range ortho {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || grid[ny][nx] == passage {
			continue
		}

		connections := 0
		for _, d2 := range ortho {
			nnx, nny := nx+d2.X, ny+d2.Y
			// (x, y) is about to become a passage
			if nnx == x && nny == y {
				continue
			}
			if nnx >= 0 && nnx < cols && nny >= 0 && nny < rows && grid[nny][nnx] == wall {
				connections++
			}
		}
		if connections == 0 {
			return false
		}
	}

	return true
}

// placeEnemies picks up to n passage cells, farthest path distance from start first,
// keeping spawns apart from each other
func placeEnemies(grid [][]bool, start Point, n int) []Point {
	if n <= 0 {
		return nil
	}

	dist := distances(grid, start)
	cells := make([]Point, 0, len(dist))
	for p, d := range dist {
		if d >= minSpawnDistance {
			cells = append(cells, p)
		}
	}
	// Map iteration is random; order fully so a seed always yields the same level
	sort.Slice(cells, func(i, j int) bool {
		di, dj := dist[cells[i]], dist[cells[j]]
		if di != dj {
			return di > dj
		}
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	spawns := make([]Point, 0, n)
	for _, c := range cells {
		if len(spawns) == n {
			break
		}
		apart := true
		for _, s := range spawns {
			if abs(c.X-s.X)+abs(c.Y-s.Y) < minSpawnSpacing {
				apart = false
				break
			}
		}
		if apart {
			spawns = append(spawns, c)
		}
	}
	return spawns
}

// distances returns BFS step counts from start to every reachable passage
func distances(grid [][]bool, start Point) map[Point]int {
	rows, cols := len(grid), len(grid[0])
	dist := map[Point]int{start: 0}
	queue := []Point{start}
	dirs := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range dirs {
			next := curr.Add(d.X, d.Y)
			if next.X < 0 || next.X >= cols || next.Y < 0 || next.Y >= rows {
				continue
			}
			if _, seen := dist[next]; seen || grid[next.Y][next.X] == wall {
				continue
			}
			dist[next] = dist[curr] + 1
			queue = append(queue, next)
		}
	}
	return dist
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
