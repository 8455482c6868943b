package audio

import (
	"testing"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/event"
)

// Tests never open the speaker; every call must degrade to a no-op

func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.Initialized() {
		t.Fatal("manager should start uninitialized")
	}
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		sm.Play(s)
	}
	sm.Cleanup()
	sm.Cleanup()
}

func TestSoundManagerInvalidSampleRate(t *testing.T) {
	sm := NewSoundManager(&AudioConfig{Enabled: true, Volume: 50, SampleRate: 0})
	if err := sm.Initialize(); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if sm.Initialized() {
		t.Error("failed init must leave manager uninitialized")
	}
	sm.Play(core.SoundGoal)
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(&AudioConfig{Enabled: false, Volume: 80, SampleRate: 44100})
	if !sm.Muted() {
		t.Fatal("disabled config should start muted")
	}
	if sm.ToggleMute() {
		t.Error("toggle should unmute")
	}
	if sm.Muted() {
		t.Error("Muted should be false after toggle")
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("second toggle should mute again")
	}
}

func TestSoundManagerVolume(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.Volume() != 80 {
		t.Errorf("Volume = %d, want default 80", sm.Volume())
	}

	tests := []struct {
		in, want int
		silent   bool
	}{
		{100, 100, false},
		{0, 0, true},
		{150, 100, false},
		{-5, 0, true},
		{50, 50, false},
	}
	for _, tt := range tests {
		sm.SetVolume(tt.in)
		if sm.Volume() != tt.want {
			t.Errorf("SetVolume(%d): Volume = %d, want %d", tt.in, sm.Volume(), tt.want)
		}
		if sm.volume.Silent != tt.silent {
			t.Errorf("SetVolume(%d): Silent = %v, want %v", tt.in, sm.volume.Silent, tt.silent)
		}
	}
	if sm.volume.Volume != -1 {
		t.Errorf("50%% volume = %v on log2 scale, want -1", sm.volume.Volume)
	}
}

type recordingPlayer struct {
	played []core.SoundType
}

func (p *recordingPlayer) Play(s core.SoundType) { p.played = append(p.played, s) }

func TestEventHandlerRoutesSounds(t *testing.T) {
	player := &recordingPlayer{}
	q := event.NewEventQueue()
	r := event.NewRouter(q)
	r.Register(NewEventHandler(player))

	q.Push(event.GameEvent{Type: event.EventWallHit})
	q.Push(event.GameEvent{Type: event.EventStateChanged})
	q.Push(event.GameEvent{Type: event.EventPaddleHit, Payload: &event.PaddleHitPayload{Paddle: core.PlayerAI}})
	q.Push(event.GameEvent{Type: event.EventGoalScored})
	r.DispatchAll()

	want := []core.SoundType{core.SoundWallHit, core.SoundPaddleHit, core.SoundGoal}
	if len(player.played) != len(want) {
		t.Fatalf("played %v, want %v", player.played, want)
	}
	for i := range want {
		if player.played[i] != want[i] {
			t.Errorf("played[%d] = %s, want %s", i, player.played[i], want[i])
		}
	}
}
