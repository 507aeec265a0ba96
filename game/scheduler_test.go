package game

import (
	"testing"
	"time"
)

func TestScheduler_Cadence(t *testing.T) {
	tests := []struct {
		name   string
		deltas []time.Duration
		ticks  int
	}{
		{"single full step", []time.Duration{500 * time.Millisecond}, 1},
		{"split step", []time.Duration{100 * time.Millisecond, 400 * time.Millisecond}, 1},
		{"five frames", []time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond}, 1},
		{"short", []time.Duration{200 * time.Millisecond, 299 * time.Millisecond}, 0},
		{"excess discarded", []time.Duration{900 * time.Millisecond, 100 * time.Millisecond}, 1},
		{"two steps", []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scheduler{Interval: DefaultStepInterval}
			ticks := 0
			for _, dt := range tt.deltas {
				if s.Accumulate(dt) {
					ticks++
				}
			}
			if ticks != tt.ticks {
				t.Errorf("ticks = %d, want %d", ticks, tt.ticks)
			}
		})
	}
}

func TestScheduler_ResetsToZero(t *testing.T) {
	s := Scheduler{Interval: DefaultStepInterval}
	if !s.Accumulate(700 * time.Millisecond) {
		t.Fatal("Expected tick")
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed after tick = %v, want 0", s.Elapsed())
	}
}
