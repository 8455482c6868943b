package engine

import (
	"log"
	"strconv"
	"time"

	"github.com/lixenwraith/pong/component"
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/event"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// SessionConfig seeds the menu
// Zero Field, SpeedTenths, Rand, Clock and Events fall back to defaults
// Difficulty is taken as given: its zero value is easy, pass parameter.DefaultDifficulty for medium
type SessionConfig struct {
	Field       core.Field
	SpeedTenths int
	Difficulty  parameter.Difficulty
	// MaxScore pre-fills the menu buffer when in [MaxScoreMin, MaxScoreMax]
	MaxScore int

	Rand   vmath.Source
	Clock  TimeProvider
	Events *event.EventQueue
}

// Session is the Menu/Playing/Paused/GameOver state machine wrapping one Match
// Single-threaded: Update must be called from one goroutine
type Session struct {
	state core.GameState
	match *Match

	field       core.Field
	speedTenths int
	difficulty  parameter.Difficulty
	maxScore    int    // 0 = unset until the menu is confirmed
	maxScoreBuf string // digits typed on the menu

	lastEscape time.Time // zero = unarmed
	winner     core.Player
	exited     bool
	frame      int64

	rng    vmath.Source
	clock  TimeProvider
	events *event.EventQueue
}

// NewSession creates a session in the Menu state with a fresh match
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		state:       core.StateMenu,
		field:       cfg.Field,
		speedTenths: cfg.SpeedTenths,
		difficulty:  cfg.Difficulty,
		rng:         cfg.Rand,
		clock:       cfg.Clock,
		events:      cfg.Events,
	}

	if s.field.Width == 0 || s.field.Height == 0 {
		s.field = core.DefaultField()
	}
	if s.speedTenths == 0 {
		s.speedTenths = parameter.SpeedTenthsDefault
	}
	s.speedTenths = clampTenths(s.speedTenths)
	if s.difficulty >= parameter.DifficultyCount {
		s.difficulty = parameter.DefaultDifficulty
	}
	if cfg.MaxScore >= parameter.MaxScoreMin && cfg.MaxScore <= parameter.MaxScoreMax {
		s.maxScoreBuf = strconv.Itoa(cfg.MaxScore)
	}
	if s.rng == nil {
		s.rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if s.clock == nil {
		s.clock = NewMonotonicTimeProvider()
	}
	if s.events == nil {
		s.events = event.NewEventQueue()
	}

	s.match = s.newMatch()
	return s
}

func (s *Session) newMatch() *Match {
	return NewMatch(MatchConfig{
		Field:      s.field,
		Multiplier: s.Multiplier(),
		Difficulty: s.difficulty,
	}, s.rng, s.events)
}

// State returns the current lifecycle state
func (s *Session) State() core.GameState { return s.state }

// Match returns the match currently owned by the session
func (s *Session) Match() *Match { return s.match }

// Events returns the queue all notifications are pushed to
func (s *Session) Events() *event.EventQueue { return s.events }

// Multiplier returns the global speed multiplier
func (s *Session) Multiplier() float64 { return float64(s.speedTenths) / 10 }

func (s *Session) Difficulty() parameter.Difficulty { return s.difficulty }

// MaxScore returns the win threshold, 0 while still in the menu
func (s *Session) MaxScore() int { return s.maxScore }

// MaxScoreInput returns the digits typed on the menu
func (s *Session) MaxScoreInput() string { return s.maxScoreBuf }

// Winner returns the recorded winner once in GameOver
func (s *Session) Winner() core.Player { return s.winner }

// Exited reports a confirmed double escape; the caller should terminate
func (s *Session) Exited() bool { return s.exited }

// Frame returns the number of Update calls so far
func (s *Session) Frame() int64 { return s.frame }

// EscapeArmed reports whether one more escape within the window exits
func (s *Session) EscapeArmed() bool {
	if s.lastEscape.IsZero() {
		return false
	}
	return s.clock.Now().Sub(s.lastEscape) <= parameter.EscapeExitWindow
}

// Update processes the frame's actions in order, then runs one tick if Playing
func (s *Session) Update(in input.Input) {
	if s.exited {
		return
	}
	s.frame++

	for _, a := range in.Actions {
		s.handleAction(a)
		if s.exited {
			return
		}
	}

	if s.state == core.StatePlaying {
		s.tick(in)
	}
}

// Apply runs a single action without advancing the simulation
func (s *Session) Apply(a input.Action) {
	if s.exited {
		return
	}
	s.handleAction(a)
}

func (s *Session) handleAction(a input.Action) {
	switch s.state {
	case core.StateMenu:
		s.handleMenu(a)
	case core.StatePlaying:
		s.handlePlaying(a)
	case core.StatePaused:
		s.handlePaused(a)
	case core.StateGameOver:
		s.handleGameOver(a)
	}
}

func (s *Session) handleMenu(a input.Action) {
	switch a.Type {
	case input.ActionSpeedUp:
		s.adjustSpeed(parameter.SpeedTenthsStep)
	case input.ActionSpeedDown:
		s.adjustSpeed(-parameter.SpeedTenthsStep)
	case input.ActionCycleDifficulty:
		s.cycleDifficulty()
	case input.ActionDigit:
		s.appendDigit(a.Digit)
	case input.ActionBackspace:
		if n := len(s.maxScoreBuf); n > 0 {
			s.maxScoreBuf = s.maxScoreBuf[:n-1]
		}
	case input.ActionConfirm:
		s.startMatch()
	}
}

func (s *Session) handlePlaying(a input.Action) {
	switch a.Type {
	case input.ActionMoveUp:
		s.match.MovePlayer(component.DirUp)
	case input.ActionMoveDown:
		s.match.MovePlayer(component.DirDown)
	case input.ActionPauseToggle, input.ActionQuit:
		s.lastEscape = time.Time{}
		s.transition(core.StatePaused)
	}
}

func (s *Session) handlePaused(a input.Action) {
	switch a.Type {
	case input.ActionSpeedUp:
		s.adjustSpeed(parameter.SpeedTenthsStep)
	case input.ActionSpeedDown:
		s.adjustSpeed(-parameter.SpeedTenthsStep)
	case input.ActionCycleDifficulty:
		s.cycleDifficulty()
	case input.ActionConfirm, input.ActionPauseToggle:
		s.lastEscape = time.Time{}
		s.transition(core.StatePlaying)
	case input.ActionReturnToMenu:
		s.returnToMenu()
	case input.ActionQuit:
		s.pressEscape()
	}
}

func (s *Session) handleGameOver(a input.Action) {
	if a.Type == input.ActionQuit {
		s.pressEscape()
	}
}

// startMatch fixes the max score from the buffer (default 10) and enters Playing
func (s *Session) startMatch() {
	s.maxScore = parameter.MaxScoreDefault
	if n, ok := parseMaxScore(s.maxScoreBuf); ok {
		s.maxScore = n
	}
	s.match.SetMaxScore(s.maxScore)
	log.Printf("match %s: start speed=%.1fx difficulty=%s max_score=%d",
		s.match.ID, s.Multiplier(), s.difficulty, s.maxScore)
	s.transition(core.StatePlaying)
}

// returnToMenu discards the match; speed and difficulty carry over
func (s *Session) returnToMenu() {
	log.Printf("match %s: abandoned at %d-%d", s.match.ID, s.match.PlayerScore, s.match.AIScore)
	s.match = s.newMatch()
	s.maxScore = 0
	s.maxScoreBuf = ""
	s.winner = core.PlayerNone
	s.lastEscape = time.Time{}
	s.transition(core.StateMenu)
}

// pressEscape arms the exit timer, or exits if armed within the window
// A press after the window re-arms without resuming
func (s *Session) pressEscape() {
	now := s.clock.Now()
	if !s.lastEscape.IsZero() && now.Sub(s.lastEscape) <= parameter.EscapeExitWindow {
		s.exited = true
		log.Printf("session: exit requested from %s", s.state)
		s.emit(event.EventExit, nil)
		return
	}
	s.lastEscape = now
}

func (s *Session) adjustSpeed(delta int) {
	next := clampTenths(s.speedTenths + delta)
	if next == s.speedTenths {
		return
	}
	s.speedTenths = next
	s.match.UpdateSpeed(s.Multiplier())
}

func (s *Session) cycleDifficulty() {
	s.difficulty = s.difficulty.Next()
	s.match.SetDifficulty(s.difficulty)
}

// appendDigit accepts the keystroke only if the resulting buffer parses into [1, 50]
func (s *Session) appendDigit(d uint8) {
	if d > 9 {
		return
	}
	candidate := s.maxScoreBuf + string(rune('0'+d))
	if _, ok := parseMaxScore(candidate); !ok {
		return
	}
	s.maxScoreBuf = candidate
}

func (s *Session) tick(in input.Input) {
	winner := s.match.Tick(s.frame, in.PointerY, in.HasPointer)
	if winner == core.PlayerNone {
		return
	}

	s.winner = winner
	s.lastEscape = time.Time{}
	log.Printf("match %s: %s wins %d-%d", s.match.ID, winner, s.match.PlayerScore, s.match.AIScore)
	s.emit(event.EventGameOver, &event.GameOverPayload{
		Winner:      winner,
		PlayerScore: s.match.PlayerScore,
		AIScore:     s.match.AIScore,
		MatchID:     s.match.ID.String(),
	})
	s.transition(core.StateGameOver)
}

func (s *Session) transition(to core.GameState) {
	from := s.state
	if from == to {
		return
	}
	s.state = to
	s.emit(event.EventStateChanged, &event.StateChangePayload{From: from, To: to})
}

func (s *Session) emit(t event.EventType, payload any) {
	s.events.Push(event.GameEvent{Type: t, Payload: payload, Frame: s.frame})
}

// parseMaxScore accepts only non-empty decimal strings within [MaxScoreMin, MaxScoreMax]
func parseMaxScore(buf string) (int, bool) {
	if buf == "" {
		return 0, false
	}
	n, err := strconv.Atoi(buf)
	if err != nil || n < parameter.MaxScoreMin || n > parameter.MaxScoreMax {
		return 0, false
	}
	return n, true
}

func clampTenths(t int) int {
	if t < parameter.SpeedTenthsMin {
		return parameter.SpeedTenthsMin
	}
	if t > parameter.SpeedTenthsMax {
		return parameter.SpeedTenthsMax
	}
	return t
}
