package event

import (
	"testing"

	"github.com/lixenwraith/pong/core"
)

type recordingHandler struct {
	types []EventType
	got   []GameEvent
}

func (h *recordingHandler) HandleEvent(ev GameEvent) { h.got = append(h.got, ev) }
func (h *recordingHandler) EventTypes() []EventType  { return h.types }

func TestRouterDispatchesByType(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	sounds := &recordingHandler{types: []EventType{EventWallHit, EventGoalScored}}
	states := &recordingHandler{types: []EventType{EventStateChanged}}
	r.Register(sounds)
	r.Register(states)

	q.Push(GameEvent{Type: EventWallHit})
	q.Push(GameEvent{Type: EventStateChanged, Payload: &StateChangePayload{From: core.StateMenu, To: core.StatePlaying}})
	q.Push(GameEvent{Type: EventGoalScored, Payload: &GoalPayload{Scorer: core.PlayerAI, AIScore: 1}})
	q.Push(GameEvent{Type: EventExit})

	if n := r.DispatchAll(); n != 4 {
		t.Fatalf("DispatchAll = %d, want 4", n)
	}

	if len(sounds.got) != 2 {
		t.Fatalf("sound handler got %d events, want 2", len(sounds.got))
	}
	if sounds.got[0].Type != EventWallHit || sounds.got[1].Type != EventGoalScored {
		t.Errorf("sound handler order = %s, %s", sounds.got[0].Type, sounds.got[1].Type)
	}
	if len(states.got) != 1 {
		t.Fatalf("state handler got %d events, want 1", len(states.got))
	}
	p, ok := states.got[0].Payload.(*StateChangePayload)
	if !ok || p.To != core.StatePlaying {
		t.Errorf("unexpected payload %#v", states.got[0].Payload)
	}

	if r.DispatchAll() != 0 {
		t.Error("second dispatch should find nothing")
	}
}

func TestRouterHandlerFunc(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	calls := 0
	r.Register(HandlerFunc{
		Types: []EventType{EventExit},
		Fn:    func(GameEvent) { calls++ },
	})
	r.Register(HandlerFunc{
		Types: []EventType{EventExit},
		Fn:    func(GameEvent) { calls++ },
	})

	if r.HandlerCount(EventExit) != 2 {
		t.Errorf("HandlerCount = %d, want 2", r.HandlerCount(EventExit))
	}
	if r.HandlerCount(EventWallHit) != 0 {
		t.Errorf("HandlerCount(wall) = %d, want 0", r.HandlerCount(EventWallHit))
	}

	q.Push(GameEvent{Type: EventExit})
	r.DispatchAll()
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventGoalScored.String() != "goal_scored" {
		t.Errorf("String = %q", EventGoalScored.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("out of range String = %q", EventType(99).String())
	}
}
