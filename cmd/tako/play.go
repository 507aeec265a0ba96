package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tako/audio"
	"github.com/lixenwraith/tako/config"
	"github.com/lixenwraith/tako/game"
	"github.com/lixenwraith/tako/render"
)

// Longest frame delta fed to the simulation; larger gaps (suspend, debugger) are clipped
const maxFrameDelta = 100 * time.Millisecond

// playGame runs one game at difficulty d until the player returns to the menu or quits.
// It returns the stats of the game and whether the player asked to quit.
func playGame(cfg *config.Config, d game.Difficulty, sound *audio.SoundManager) (game.Stats, bool, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return game.Stats{}, false, err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	sim, err := game.New(cfg.GameConfig(d, layout), rng)
	if err != nil {
		return game.Stats{}, false, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return game.Stats{}, false, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.Stats{}, false, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	// Restore the terminal before the crash handler in main prints
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen)

	sound.StartMusic(d.Hardest())
	defer sound.EndMusic()

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event, 64)
	go pollEvents(screen, eventChan, done)

	log.Printf("game started: difficulty=%s", d)

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if handleKey(sim, ev) {
					log.Printf("quit from game: %+v", sim.Stats())
					return sim.Stats(), true, nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-frameTicker.C:
			dt := min(now.Sub(last), maxFrameDelta)
			last = now

			sim.Update(dt)
			routeEvents(sim.Events(), sound)

			if sim.ReturnRequested() {
				log.Printf("back to menu: %+v", sim.Stats())
				return sim.Stats(), false, nil
			}

			snap := sim.Snapshot()
			renderer.Spin(&snap, dt)
			renderer.RenderFrame(&snap)
		}
	}
}

// pollEvents feeds screen events to out until the screen is finalized or done closes
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
