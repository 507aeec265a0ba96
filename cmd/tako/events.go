package main

import (
	"log"

	"github.com/lixenwraith/tako/audio"
	"github.com/lixenwraith/tako/game"
)

// soundSink is the part of the sound manager the game loop drives
type soundSink interface {
	Play(s audio.SoundType)
	StopMusic()
	ResumeMusic()
}

// routeEvents forwards simulation events to audio and the log
func routeEvents(events []game.Event, sink soundSink) {
	for _, ev := range events {
		switch ev.Type {
		case game.EventPickup:
			sink.Play(audio.SoundPickup)
		case game.EventWin:
			log.Printf("round won at %v, intensity now %.3f", ev.Position, ev.Intensity)
			sink.StopMusic()
			sink.Play(audio.SoundWin)
		case game.EventLose:
			log.Printf("caught at %v, intensity now %.3f", ev.Position, ev.Intensity)
			sink.StopMusic()
			sink.Play(audio.SoundLose)
		case game.EventOutcomeExpired:
			log.Printf("countdown over, next round")
			sink.ResumeMusic()
		}
	}
}
