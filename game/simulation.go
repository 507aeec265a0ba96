package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/tako/maze"
)

// Collision tolerances in cells
const (
	pickupTolerance = 0.1
	enemyTolerance  = 0.3
)

var ErrInvalidConfig = errors.New("game: invalid config")

// Config holds simulation parameters
type Config struct {
	Layout        string
	Difficulty    Difficulty
	StepInterval  time.Duration
	WinCountdown  time.Duration
	LoseCountdown time.Duration
}

// DefaultConfig returns the stock level at the given difficulty
func DefaultConfig(d Difficulty) Config {
	return Config{
		Layout:        maze.DefaultLayout,
		Difficulty:    d,
		StepInterval:  DefaultStepInterval,
		WinCountdown:  DefaultWinCountdown,
		LoseCountdown: DefaultLoseCountdown,
	}
}

// Stats counts progress across rounds of one game
type Stats struct {
	Wins      int
	Losses    int
	Collected int // pickups taken in the current round
}

// Simulation owns the grid, actors and pickups of one game.
// It is single-threaded: the host calls Update once per frame and reads Snapshot afterwards.
type Simulation struct {
	cfg    Config
	level  *maze.Level // initial configuration every reset copies from
	roamer *Roamer

	grid    *maze.Grid
	walls   []maze.Point
	player  Player
	enemies []Enemy
	pickups []maze.Point

	scheduler Scheduler
	outcome   Outcome
	intensity float64
	stats     Stats
	events    []Event

	returnRequested bool
}

// New validates cfg, loads the level and places all entities at their spawns
func New(cfg Config, rng *rand.Rand) (*Simulation, error) {
	if cfg.StepInterval <= 0 {
		return nil, fmt.Errorf("%w: step interval %v", ErrInvalidConfig, cfg.StepInterval)
	}
	if cfg.WinCountdown < 0 || cfg.LoseCountdown < 0 {
		return nil, fmt.Errorf("%w: negative countdown", ErrInvalidConfig)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	lvl, err := maze.Load(cfg.Layout)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	s := &Simulation{
		cfg:       cfg,
		level:     lvl,
		roamer:    NewRoamer(rng),
		scheduler: Scheduler{Interval: cfg.StepInterval},
		intensity: cfg.Difficulty.InitialIntensity(),
	}
	s.reset()
	return s, nil
}

// reset restores grid, actors and pickups to the level's initial configuration.
// Intensity, stats and the player's held facing carry over.
func (s *Simulation) reset() {
	s.grid = s.level.Grid
	s.walls = s.grid.Walls()

	s.player = Player{Actor: newActor(s.level.Player), Facing: s.player.Facing}

	s.enemies = make([]Enemy, len(s.level.Enemies))
	for i, p := range s.level.Enemies {
		s.enemies[i] = Enemy{Actor: newActor(p), Facing: Up}
	}

	s.pickups = make([]maze.Point, len(s.level.Pickups))
	copy(s.pickups, s.level.Pickups)

	s.stats.Collected = 0
}

// Update is the per-frame entry point. While an outcome countdown runs it only counts
// down; otherwise it animates actors and feeds the step scheduler.
func (s *Simulation) Update(dt time.Duration) {
	if s.outcome.Active() {
		s.outcome.Remaining -= dt
		if s.outcome.Remaining <= 0 {
			s.outcome = Outcome{}
			s.emit(EventOutcomeExpired)
		}
		return
	}

	s.player.Animate(dt, s.cfg.StepInterval)
	for i := range s.enemies {
		s.enemies[i].Animate(dt, s.cfg.StepInterval)
	}
	s.Advance(dt)
}

// Advance accumulates dt and runs one tick when the step interval is reached.
// It reports whether a tick ran.
func (s *Simulation) Advance(dt time.Duration) bool {
	if !s.scheduler.Accumulate(dt) {
		return false
	}
	s.tick()
	return true
}

// tick runs one discrete step: enemies first, then the player.
// A win or loss resets the level and ends the tick, so no check ever sees pre-reset positions.
func (s *Simulation) tick() {
	for i := range s.enemies {
		s.roamer.Step(s.grid, &s.enemies[i])
	}

	p := &s.player
	p.Snap()

	if idx := s.pickupAt(p.Cell); idx >= 0 {
		s.pickups = append(s.pickups[:idx], s.pickups[idx+1:]...)
		s.stats.Collected++
		s.emit(EventPickup)
		if len(s.pickups) == 0 {
			s.win()
			return
		}
	}

	if s.enemyAt(p.Cell) {
		s.lose()
		return
	}

	if passable(s.grid, p.Cell, p.Facing) {
		p.MoveTo(destination(p.Cell, p.Facing))
	}
}

func (s *Simulation) win() {
	pos := s.player.Cell
	s.reset()
	s.intensity *= 2
	s.stats.Wins++
	s.outcome = Outcome{Kind: OutcomeWin, Remaining: s.cfg.WinCountdown}
	s.emitAt(EventWin, pos)
}

func (s *Simulation) lose() {
	pos := s.player.Cell
	s.reset()
	if !s.cfg.Difficulty.Hardest() {
		s.intensity /= 2
	}
	s.stats.Losses++
	s.outcome = Outcome{Kind: OutcomeLose, Remaining: s.cfg.LoseCountdown}
	s.emitAt(EventLose, pos)
}

func (s *Simulation) pickupAt(p maze.Point) int {
	for i, c := range s.pickups {
		if near(c, p, pickupTolerance) {
			return i
		}
	}
	return -1
}

func (s *Simulation) enemyAt(p maze.Point) bool {
	for i := range s.enemies {
		if near(s.enemies[i].Cell, p, enemyTolerance) {
			return true
		}
	}
	return false
}

func near(a, b maze.Point, tol float64) bool {
	return math.Abs(float64(a.X-b.X)) <= tol && math.Abs(float64(a.Y-b.Y)) <= tol
}

func (s *Simulation) emit(t EventType) {
	s.emitAt(t, s.player.Cell)
}

func (s *Simulation) emitAt(t EventType, pos maze.Point) {
	s.events = append(s.events, Event{Type: t, Position: pos, Intensity: s.intensity})
}

// SetPlayerFacing sets the direction the player tries on the next tick.
// Input is ignored while an outcome countdown runs.
func (s *Simulation) SetPlayerFacing(d Direction) {
	if s.outcome.Active() || d < 0 || d >= directionCount {
		return
	}
	s.player.Facing = d
}

// RequestReturnToMenu flags the game for the host to close.
// Like movement input it is ignored while an outcome countdown runs.
func (s *Simulation) RequestReturnToMenu() {
	if s.outcome.Active() {
		return
	}
	s.returnRequested = true
}

// ReturnRequested reports whether RequestReturnToMenu was called
func (s *Simulation) ReturnRequested() bool {
	return s.returnRequested
}

// Events drains queued events in the order they fired
func (s *Simulation) Events() []Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events
	s.events = nil
	return ev
}

// Outcome returns the current ending state
func (s *Simulation) Outcome() Outcome {
	return s.outcome
}

// Intensity returns the presentation difficulty scale
func (s *Simulation) Intensity() float64 {
	return s.intensity
}

// Difficulty returns the tier this game was started with
func (s *Simulation) Difficulty() Difficulty {
	return s.cfg.Difficulty
}

// Grid returns the wall map
func (s *Simulation) Grid() *maze.Grid {
	return s.grid
}

// Player returns a copy of the player state
func (s *Simulation) Player() Player {
	return s.player
}

// Enemies returns a copy of every enemy state
func (s *Simulation) Enemies() []Enemy {
	out := make([]Enemy, len(s.enemies))
	copy(out, s.enemies)
	return out
}

// Pickups returns a copy of remaining pickup positions
func (s *Simulation) Pickups() []maze.Point {
	out := make([]maze.Point, len(s.pickups))
	copy(out, s.pickups)
	return out
}

// Stats returns round counters
func (s *Simulation) Stats() Stats {
	return s.stats
}
