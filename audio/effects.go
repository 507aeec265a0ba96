package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Cue timing
const (
	pickupDuration = 60 * time.Millisecond
	pickupAttack   = 3 * time.Millisecond
	pickupRelease  = 40 * time.Millisecond

	winNoteDuration = 140 * time.Millisecond
	winLastDuration = 700 * time.Millisecond
	winAttack       = 5 * time.Millisecond
	winRelease      = 60 * time.Millisecond

	loseNoteDuration = 320 * time.Millisecond
	loseLastDuration = 1200 * time.Millisecond
	loseAttack       = 10 * time.Millisecond
	loseRelease      = 200 * time.Millisecond

	introDuration = 2500 * time.Millisecond
	introAttack   = 400 * time.Millisecond
	introRelease  = 1200 * time.Millisecond
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero volume maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func note(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreatePickupSound generates a short high blip
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sine, err := generators.SineTone(rate, 1318.51)
	if err != nil {
		return nil
	}
	blip := beep.Take(rate.N(pickupDuration), sine)
	shaped := NewEnvelope(blip, pickupDuration, pickupAttack, pickupRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundPickup))
}

// CreateWinSound generates a rising major arpeggio (C5 E5 G5 C6)
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	seq := beep.Seq(
		note(523.25, winNoteDuration, winAttack, winRelease, WaveSquare, rate),
		note(659.25, winNoteDuration, winAttack, winRelease, WaveSquare, rate),
		note(783.99, winNoteDuration, winAttack, winRelease, WaveSquare, rate),
		beep.Mix(
			newVolume(note(1046.50, winLastDuration, winAttack, winLastDuration/2, WaveSquare, rate), 0.7),
			newVolume(note(2093.00, winLastDuration, winAttack, winLastDuration/3, WaveSine, rate), 0.3),
		),
	)

	return newVolume(seq, 0.5*cfg.Volume(SoundWin))
}

// CreateLoseSound generates a falling minor line (G4 Eb4 C4) over a noise tail
func CreateLoseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	seq := beep.Seq(
		note(392.00, loseNoteDuration, loseAttack, loseRelease/2, WaveSaw, rate),
		note(311.13, loseNoteDuration, loseAttack, loseRelease/2, WaveSaw, rate),
		beep.Mix(
			newVolume(note(261.63, loseLastDuration, loseAttack, loseRelease*4, WaveSaw, rate), 0.8),
			newVolume(note(0, loseLastDuration, loseAttack, loseLastDuration, WaveNoise, rate), 0.15),
		),
	)

	return newVolume(seq, 0.4*cfg.Volume(SoundLose))
}

// CreateIntroSound generates a slow swelling low drone
func CreateIntroSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	drone := beep.Mix(
		newVolume(note(55.0, introDuration, introAttack, introRelease, WaveSaw, rate), 0.6),
		newVolume(note(82.41, introDuration, introAttack, introRelease, WaveSaw, rate), 0.4),
		newVolume(note(110.0, introDuration, introAttack, introRelease, WaveSine, rate), 0.3),
	)

	return newVolume(drone, 0.5*cfg.Volume(SoundIntro))
}

// GetSoundEffect returns the streamer for the given sound type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundPickup:
		return CreatePickupSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundLose:
		return CreateLoseSound(cfg)
	case SoundIntro:
		return CreateIntroSound(cfg)
	default:
		return nil
	}
}
