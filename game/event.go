package game

import "github.com/lixenwraith/tako/maze"

// EventType identifies something the simulation did during a tick or countdown
type EventType int

const (
	// EventPickup fires when the player collects a pickup
	// Consumer: audio blip, HUD
	EventPickup EventType = iota

	// EventWin fires when the last pickup is collected; the level is already reset
	// Consumer: audio (stop music, win cue), log
	EventWin

	// EventLose fires when an enemy reaches the player; the level is already reset
	// Consumer: audio (stop music, lose cue), log
	EventLose

	// EventOutcomeExpired fires when the win/lose countdown runs out and play resumes
	// Consumer: audio (resume music)
	EventOutcomeExpired
)

var eventNames = map[EventType]string{
	EventPickup:         "pickup",
	EventWin:            "win",
	EventLose:           "lose",
	EventOutcomeExpired: "outcome_expired",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is queued by the simulation and drained by the host
type Event struct {
	Type      EventType
	Position  maze.Point // player cell when the event fired
	Intensity float64    // intensity after the event applied
}
