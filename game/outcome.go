package game

import "time"

// Default countdowns before play resumes
const (
	DefaultWinCountdown  = 5 * time.Second
	DefaultLoseCountdown = 10 * time.Second
)

// OutcomeKind tells the renderer which overlay to draw
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeWin
	OutcomeLose
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Outcome is the ending display state; normal play is suspended while Kind is not None
type Outcome struct {
	Kind      OutcomeKind
	Remaining time.Duration
}

// Active reports whether a countdown is running
func (o Outcome) Active() bool {
	return o.Kind != OutcomeNone
}
