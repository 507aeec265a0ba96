package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays game cues and the background theme.
// Every method is a no-op until Initialize succeeds, so the game runs without a device.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	music       *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a sound manager; nil cfg uses LoadAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = LoadAudioConfig()
	}
	return &SoundManager{cfg: cfg}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play starts a one-shot cue
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if streamer := GetSoundEffect(s, sm.cfg); streamer != nil {
		speaker.Play(streamer)
	}
}

// StartMusic replaces any running theme with a fresh one, optionally preceded by the intro cue
func (sm *SoundManager) StartMusic(intro bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.dropMusic()

	rate := beep.SampleRate(sm.cfg.SampleRate)
	var theme beep.Streamer = newVolume(NewMusicGenerator(rate), sm.cfg.MusicLevel())
	if intro {
		theme = beep.Seq(CreateIntroSound(sm.cfg), theme)
	}

	sm.music = &beep.Ctrl{Streamer: theme, Paused: false}
	speaker.Play(sm.music)
}

// StartMenuMusic replaces any running theme with the menu loop
func (sm *SoundManager) StartMenuMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.dropMusic()

	rate := beep.SampleRate(sm.cfg.SampleRate)
	sm.music = &beep.Ctrl{Streamer: newVolume(NewMenuMusicGenerator(rate), sm.cfg.MusicLevel())}
	speaker.Play(sm.music)
}

// StopMusic pauses the theme; ResumeMusic continues it
func (sm *SoundManager) StopMusic() {
	sm.setMusicPaused(true)
}

// ResumeMusic continues a paused theme
func (sm *SoundManager) ResumeMusic() {
	sm.setMusicPaused(false)
}

// EndMusic removes the theme, used when leaving the menu or a game
func (sm *SoundManager) EndMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.dropMusic()
}

// MusicPlaying reports whether a theme is running and not paused
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !sm.music.Paused
}

func (sm *SoundManager) setMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = paused
	speaker.Unlock()
}

// dropMusic detaches the current theme; a Ctrl with no streamer drains and the speaker drops it.
// Caller holds sm.mu.
func (sm *SoundManager) dropMusic() {
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}
