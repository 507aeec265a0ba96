package main

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/tako/audio"
	"github.com/lixenwraith/tako/game"
)

type recordingSink struct {
	calls []string
}

func (r *recordingSink) Play(s audio.SoundType) { r.calls = append(r.calls, "play "+s.String()) }
func (r *recordingSink) StopMusic()             { r.calls = append(r.calls, "stop") }
func (r *recordingSink) ResumeMusic()           { r.calls = append(r.calls, "resume") }

func TestRouteEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []game.Event
		want   []string
	}{
		{"none", nil, nil},
		{"pickup", []game.Event{{Type: game.EventPickup}}, []string{"play pickup"}},
		{
			"last pickup wins",
			[]game.Event{{Type: game.EventPickup}, {Type: game.EventWin}},
			[]string{"play pickup", "stop", "play win"},
		},
		{"caught", []game.Event{{Type: game.EventLose}}, []string{"stop", "play lose"}},
		{"countdown over", []game.Event{{Type: game.EventOutcomeExpired}}, []string{"resume"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			routeEvents(tt.events, sink)
			if !reflect.DeepEqual(sink.calls, tt.want) {
				t.Errorf("calls = %v, want %v", sink.calls, tt.want)
			}
		})
	}
}
