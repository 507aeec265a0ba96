package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Theme loop timing
const (
	musicKickLen  = 90 * time.Millisecond
	musicNoteGate = 0.8 // fraction of a beat a melody note sounds
)

// theme is one looping arrangement; melody and bass are Hz per beat, 0 rests
type theme struct {
	beat   time.Duration
	melody []float64
	bass   []float64
	kick   bool
	lead   float64 // melody amplitude
}

// gameTheme drives play: eighth notes at 120 BPM over a kick
var gameTheme = theme{
	beat: 250 * time.Millisecond,
	melody: []float64{
		523.25, 0, 659.25, 783.99, 659.25, 0, 523.25, 587.33,
		493.88, 0, 587.33, 698.46, 587.33, 0, 493.88, 523.25,
	},
	bass: []float64{
		130.81, 130.81, 130.81, 130.81, 130.81, 130.81, 130.81, 130.81,
		98.00, 98.00, 98.00, 98.00, 110.00, 110.00, 123.47, 123.47,
	},
	kick: true,
	lead: 0.08,
}

// menuTheme is the calmer menu loop: quarter notes at 90 BPM, no drums
var menuTheme = theme{
	beat: 667 * time.Millisecond,
	melody: []float64{
		392.00, 440.00, 523.25, 0, 440.00, 392.00, 329.63, 0,
		349.23, 392.00, 440.00, 0, 392.00, 329.63, 293.66, 0,
	},
	bass: []float64{
		130.81, 130.81, 130.81, 130.81, 110.00, 110.00, 110.00, 110.00,
		87.31, 87.31, 87.31, 87.31, 98.00, 98.00, 98.00, 98.00,
	},
	lead: 0.05,
}

// MusicGenerator streams a looping theme: an optional kick every beat pair,
// a soft bass line and a square-wave melody. It never drains.
type MusicGenerator struct {
	theme   theme
	sr      beep.SampleRate
	pos     int
	beatLen int
	kickLen int
	gateLen int
}

// NewMusicGenerator creates the in-game theme generator
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return newMusicGenerator(sr, gameTheme)
}

// NewMenuMusicGenerator creates the menu theme generator
func NewMenuMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return newMusicGenerator(sr, menuTheme)
}

func newMusicGenerator(sr beep.SampleRate, th theme) *MusicGenerator {
	beatLen := sr.N(th.beat)
	return &MusicGenerator{
		theme:   th,
		sr:      sr,
		beatLen: beatLen,
		kickLen: sr.N(musicKickLen),
		gateLen: int(float64(beatLen) * musicNoteGate),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	th := &g.theme
	for i := range samples {
		beat := g.pos / g.beatLen
		beatPos := g.pos % g.beatLen
		t := float64(g.pos) / float64(g.sr)
		tb := float64(beatPos) / float64(g.sr)

		// Kick on every other beat
		kick := 0.0
		if th.kick && beat%2 == 0 && beatPos < g.kickLen {
			env := 1.0 - float64(beatPos)/float64(g.kickLen)
			freq := 55 * (1 + 2*env)
			kick = 0.35 * env * math.Sin(2*math.Pi*freq*tb)
		}

		bass := 0.12 * math.Sin(2*math.Pi*th.bass[beat%len(th.bass)]*t)

		melody := 0.0
		if f := th.melody[beat%len(th.melody)]; f > 0 && beatPos < g.gateLen {
			env := 1.0 - float64(beatPos)/float64(g.gateLen)
			if math.Mod(f*t, 1) < 0.5 {
				melody = th.lead * env
			} else {
				melody = -th.lead * env
			}
		}

		sample := kick + bass + melody
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
