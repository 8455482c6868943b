package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// MatchConfig is the global configuration a match is built with
type MatchConfig struct {
	Field      core.Field
	Multiplier float64
	Difficulty parameter.Difficulty
	MaxScore   int // 0 until the session leaves the menu
}

// Match owns one of each entity and the score pair, and runs one tick of simulation
type Match struct {
	ID uuid.UUID

	Player *component.Paddle
	AI     *component.AIPaddle
	Ball   *component.Ball

	PlayerScore int
	AIScore     int

	config MatchConfig
	events *event.EventQueue
	frame  int64
}

// NewMatch builds a match with centered paddles and a freshly launched ball
func NewMatch(cfg MatchConfig, rng vmath.Source, events *event.EventQueue) *Match {
	if cfg.Field.Width == 0 || cfg.Field.Height == 0 {
		cfg.Field = core.DefaultField()
	}
	if events == nil {
		events = event.NewEventQueue()
	}

	// Place paddles relative to the actual field so non-default sizes stay symmetric
	startY := cfg.Field.Height/2 - parameter.PaddleHeight/2
	aiX := cfg.Field.Width - parameter.PaddleMargin - parameter.PaddleWidth

	return &Match{
		ID:     uuid.New(),
		Player: component.NewPaddle(cfg.Field, parameter.PlayerPaddleX, startY, cfg.Multiplier),
		AI:     component.NewAIPaddle(cfg.Field, aiX, startY, cfg.Multiplier, cfg.Difficulty, rng),
		Ball:   component.NewBall(cfg.Field, cfg.Multiplier, rng),
		config: cfg,
		events: events,
	}
}

// Config returns the match configuration
func (m *Match) Config() MatchConfig { return m.config }

// SetMaxScore fixes the win threshold
func (m *Match) SetMaxScore(n int) { m.config.MaxScore = n }

// UpdateSpeed rescales every entity to the new multiplier
func (m *Match) UpdateSpeed(multiplier float64) {
	m.config.Multiplier = multiplier
	m.Player.UpdateSpeed(multiplier)
	m.AI.UpdateSpeed(multiplier)
	m.Ball.UpdateSpeed(multiplier)
}

// SetDifficulty swaps the AI profile and re-derives its speed
func (m *Match) SetDifficulty(d parameter.Difficulty) {
	m.config.Difficulty = d
	m.AI.SetDifficulty(d)
	m.AI.UpdateSpeed(m.config.Multiplier)
}

// MovePlayer applies a discrete keyboard move to the player paddle
func (m *Match) MovePlayer(dir component.Direction) {
	m.Player.Move(dir)
}

// Tick advances the simulation one step and returns the winner if the max score was reached
// Order: pointer follow, ball, AI, paddle collisions, scoring
func (m *Match) Tick(frame int64, pointerY float64, hasPointer bool) core.Player {
	m.frame = frame

	if hasPointer {
		m.Player.SetPosition(pointerY)
	}

	if m.Ball.Update() {
		m.emit(event.EventWallHit, nil)
	}

	m.AI.Update(m.Ball)

	if m.Ball.CheckCollision(m.Player) {
		m.emit(event.EventPaddleHit, &event.PaddleHitPayload{Paddle: core.PlayerHuman})
	}
	if m.Ball.CheckCollision(m.AI) {
		m.emit(event.EventPaddleHit, &event.PaddleHitPayload{Paddle: core.PlayerAI})
	}

	scorer := m.resolveScoring()
	if scorer == core.PlayerNone {
		return core.PlayerNone
	}
	return m.Winner()
}

// resolveScoring credits exactly one side per exit and relaunches the ball
func (m *Match) resolveScoring() core.Player {
	var scorer core.Player
	switch m.Ball.ExitSide() {
	case component.SideLeft:
		m.AIScore++
		scorer = core.PlayerAI
	case component.SideRight:
		m.PlayerScore++
		scorer = core.PlayerHuman
	default:
		return core.PlayerNone
	}

	m.emit(event.EventGoalScored, &event.GoalPayload{
		Scorer:      scorer,
		PlayerScore: m.PlayerScore,
		AIScore:     m.AIScore,
	})
	m.Ball.Reset()
	return scorer
}

// Winner returns the side that reached the max score, checking the player first
func (m *Match) Winner() core.Player {
	if m.config.MaxScore <= 0 {
		return core.PlayerNone
	}
	if m.PlayerScore >= m.config.MaxScore {
		return core.PlayerHuman
	}
	if m.AIScore >= m.config.MaxScore {
		return core.PlayerAI
	}
	return core.PlayerNone
}

func (m *Match) emit(t event.EventType, payload any) {
	m.events.Push(event.GameEvent{Type: t, Payload: payload, Frame: m.frame})
}
