package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/lixenwraith/tako/audio"
	"github.com/lixenwraith/tako/config"
	"github.com/lixenwraith/tako/game"
	"github.com/lixenwraith/tako/menu"
)

var (
	configFlag     = flag.String("config", "", "Config file (default tako.yaml if present)")
	difficultyFlag = flag.String("difficulty", "", "Preselected difficulty: playable, hard, takodachi")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/tako.log")
	generateFlag   = flag.Bool("generate", false, "Play a generated maze instead of the stock level")
	seedFlag       = flag.Int64("seed", 0, "Seed for enemy choices and generated mazes (0 = time based)")
	levelFlag      = flag.String("level", "", "Level file in the text layout format")
	muteFlag       = flag.Bool("mute", false, "Disable audio")
)

func main() {
	// Panic Recovery: screens restore the terminal before this runs
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTAKO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	log.SetPrefix(fmt.Sprintf("[%s] ", uuid.NewString()[:8]))
	log.Printf("session started")

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err == nil {
		defer sound.Cleanup()
	} else if !errors.Is(err, audio.ErrDisabled) {
		fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
		log.Printf("audio: %v", err)
	}

	selected := cfg.Difficulty
	var total game.Stats
	for {
		sound.StartMenuMusic()
		choice, err := menu.New(selected, summary(total)).Run()
		sound.EndMusic()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if choice.Quit {
			break
		}
		selected = choice.Difficulty

		stats, quit, err := playGame(cfg, selected, sound)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Game failed: %v\n", err)
			os.Exit(1)
		}
		total.Wins += stats.Wins
		total.Losses += stats.Losses
		if quit {
			break
		}
	}

	log.Printf("session ended: wins=%d losses=%d", total.Wins, total.Losses)
}

// applyFlags overrides config values with the flags given on the command line
func applyFlags(cfg *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "difficulty":
			d, perr := game.ParseDifficulty(*difficultyFlag)
			if perr != nil {
				err = perr
				return
			}
			cfg.Difficulty = d
		case "generate":
			cfg.Generate.Enabled = *generateFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "level":
			cfg.LevelFile = *levelFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		}
	})
	return err
}

func summary(s game.Stats) string {
	if s.Wins == 0 && s.Losses == 0 {
		return " no rounds played yet"
	}
	return fmt.Sprintf(" this session: %d won, %d lost", s.Wins, s.Losses)
}
