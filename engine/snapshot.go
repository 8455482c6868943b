package engine

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

// Snapshot is a read-only copy of everything a renderer or test needs after a tick
type Snapshot struct {
	Frame   int64
	MatchID string
	State   core.GameState

	Field        core.Field
	PlayerPaddle core.Rect
	AIPaddle     core.Rect
	Ball         core.Rect
	BallVX       float64
	BallVY       float64

	PlayerScore int
	AIScore     int

	SpeedMultiplier float64
	Difficulty      parameter.Difficulty
	MaxScore        int
	MaxScoreInput   string

	Winner      core.Player
	EscapeArmed bool
}

// Snapshot copies the current session view
func (s *Session) Snapshot() Snapshot {
	m := s.match
	return Snapshot{
		Frame:   s.frame,
		MatchID: m.ID.String(),
		State:   s.state,

		Field:        s.field,
		PlayerPaddle: m.Player.Rect,
		AIPaddle:     m.AI.Rect,
		Ball:         m.Ball.Rect,
		BallVX:       m.Ball.Velocity.X(),
		BallVY:       m.Ball.Velocity.Y(),

		PlayerScore: m.PlayerScore,
		AIScore:     m.AIScore,

		SpeedMultiplier: s.Multiplier(),
		Difficulty:      s.difficulty,
		MaxScore:        s.maxScore,
		MaxScoreInput:   s.maxScoreBuf,

		Winner:      s.winner,
		EscapeArmed: s.EscapeArmed(),
	}
}
