package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPickup SoundType = iota // Pickup collected
	SoundWin                     // Last pickup collected
	SoundLose                    // Caught by an enemy
	SoundIntro                   // Hardest tier opener, plays before the music
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"pickup", "win", "lose", "intro"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ErrDisabled is returned by Initialize when the config turns audio off
var ErrDisabled = errors.New("audio disabled by config")
