package event

import "github.com/lixenwraith/pong/core"

// PaddleHitPayload names the paddle the ball bounced off
type PaddleHitPayload struct {
	Paddle core.Player
}

// GoalPayload carries the scorer and the score after the increment
type GoalPayload struct {
	Scorer      core.Player
	PlayerScore int
	AIScore     int
}

// StateChangePayload records a session transition
type StateChangePayload struct {
	From core.GameState
	To   core.GameState
}

// GameOverPayload records the final result
type GameOverPayload struct {
	Winner      core.Player
	PlayerScore int
	AIScore     int
	MatchID     string
}
