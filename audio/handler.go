package audio

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/event"
)

// Player is the playback side of SoundManager
type Player interface {
	Play(sound core.SoundType)
}

// EventHandler turns simulation notifications into sound effects
type EventHandler struct {
	player Player
}

// NewEventHandler routes events to the given player
func NewEventHandler(player Player) *EventHandler {
	return &EventHandler{player: player}
}

// EventTypes implements event.Handler
func (h *EventHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWallHit,
		event.EventPaddleHit,
		event.EventGoalScored,
	}
}

// HandleEvent implements event.Handler
func (h *EventHandler) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventWallHit:
		h.player.Play(core.SoundWallHit)
	case event.EventPaddleHit:
		h.player.Play(core.SoundPaddleHit)
	case event.EventGoalScored:
		h.player.Play(core.SoundGoal)
	}
}
