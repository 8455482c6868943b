package event

// EventType represents the type of game event
type EventType int

const (
	// EventWallHit fires on every tick the ball reflects off the top or bottom bound
	// Trigger: Match tick | Consumer: audio | Payload: nil
	EventWallHit EventType = iota

	// EventPaddleHit fires once per ball/paddle contact
	// Trigger: Match tick | Consumer: audio | Payload: *PaddleHitPayload
	EventPaddleHit

	// EventGoalScored fires when the ball fully leaves the field
	// Trigger: Match tick | Consumer: audio, log | Payload: *GoalPayload
	EventGoalScored

	// EventStateChanged fires on every session state transition
	// Trigger: Session | Consumer: log, renderer | Payload: *StateChangePayload
	EventStateChanged

	// EventGameOver fires once when a side reaches the max score
	// Trigger: Session | Consumer: log | Payload: *GameOverPayload
	EventGameOver

	// EventExit fires on a confirmed double escape
	// Trigger: Session | Consumer: main loop | Payload: nil
	EventExit

	EventTypeCount
)

var eventNames = [EventTypeCount]string{
	EventWallHit:      "wall_hit",
	EventPaddleHit:    "paddle_hit",
	EventGoalScored:   "goal_scored",
	EventStateChanged: "state_changed",
	EventGameOver:     "game_over",
	EventExit:         "exit",
}

func (t EventType) String() string {
	if t < 0 || t >= EventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent is a fire-and-forget notification emitted by the simulation
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
