package input

// ActionType discriminates the named actions the session consumes
type ActionType uint8

const (
	ActionNone ActionType = iota

	// Playing
	ActionMoveUp
	ActionMoveDown
	ActionPauseToggle

	// Menu and Paused settings
	ActionConfirm
	ActionSpeedUp
	ActionSpeedDown
	ActionCycleDifficulty
	ActionDigit // Digit carries the value
	ActionBackspace
	ActionReturnToMenu

	// Escape: pause while playing, double press to exit when paused or over
	ActionQuit

	// Audio controls, handled by the host in every state
	ActionToggleMute
	ActionVolumeUp
	ActionVolumeDown

	ActionTypeCount
)

// Action is one decoded discrete command
type Action struct {
	Type  ActionType
	Digit uint8 // 0-9, only for ActionDigit
}

// Simple builds a payload-free action
func Simple(t ActionType) Action {
	return Action{Type: t}
}

// DigitAction builds a digit keystroke; values above 9 are not representable and yield ActionNone
func DigitAction(d uint8) Action {
	if d > 9 {
		return Action{}
	}
	return Action{Type: ActionDigit, Digit: d}
}

// IsAudio reports whether the action targets the sound output rather than the session
func (a Action) IsAudio() bool {
	return a.Type >= ActionToggleMute && a.Type <= ActionVolumeDown
}

func (a Action) String() string {
	if a.Type == ActionDigit {
		return "digit(" + string(rune('0'+a.Digit)) + ")"
	}
	return a.Type.String()
}

// Input is everything the session consumes for one tick
type Input struct {
	// Actions are processed in order before the tick advances
	Actions []Action

	// PointerY is the continuous player paddle target in field units, valid when HasPointer
	PointerY   float64
	HasPointer bool

	// Close is an external close request (window close, Ctrl+C); the session never sees it as an action
	Close bool
}

// Reset clears the frame for reuse, keeping the action slice capacity
func (in *Input) Reset() {
	in.Actions = in.Actions[:0]
	in.HasPointer = false
	in.PointerY = 0
	in.Close = false
}
