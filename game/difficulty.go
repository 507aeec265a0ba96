package game

import (
	"fmt"
	"strings"
)

// Difficulty is the tier picked on the menu
type Difficulty int

const (
	Playable Difficulty = iota
	Hard
	Takodachi // hardest: intensity never drops after a loss
)

// Difficulties lists tiers in menu order
var Difficulties = []Difficulty{Playable, Hard, Takodachi}

var difficultyNames = map[Difficulty]string{
	Playable:  "playable",
	Hard:      "hard",
	Takodachi: "takodachi",
}

// Starting spin speed in degrees per 60 Hz frame
var initialIntensity = map[Difficulty]float64{
	Playable:  0.0,
	Hard:      0.1,
	Takodachi: 0.6,
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// InitialIntensity returns the intensity a new game starts with
func (d Difficulty) InitialIntensity() float64 {
	return initialIntensity[d]
}

// Hardest reports whether d is the top tier
func (d Difficulty) Hardest() bool {
	return d == Takodachi
}

// ParseDifficulty maps a tier name, case-insensitive, to its value
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range difficultyNames {
		if name == s {
			return d, nil
		}
	}
	return Playable, fmt.Errorf("unknown difficulty %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
