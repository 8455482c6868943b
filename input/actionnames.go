package input

// actionNames maps each ActionType to its canonical name
var actionNames = [ActionTypeCount]string{
	ActionNone:            "none",
	ActionMoveUp:          "move_up",
	ActionMoveDown:        "move_down",
	ActionPauseToggle:     "pause_toggle",
	ActionConfirm:         "confirm",
	ActionSpeedUp:         "speed_up",
	ActionSpeedDown:       "speed_down",
	ActionCycleDifficulty: "cycle_difficulty",
	ActionDigit:           "digit",
	ActionBackspace:       "backspace",
	ActionReturnToMenu:    "return_to_menu",
	ActionQuit:            "quit",
	ActionToggleMute:      "toggle_mute",
	ActionVolumeUp:        "volume_up",
	ActionVolumeDown:      "volume_down",
}

// actionRegistry resolves canonical names back to action types
var actionRegistry map[string]ActionType

func init() {
	actionRegistry = make(map[string]ActionType, ActionTypeCount)
	for t, name := range actionNames {
		actionRegistry[name] = ActionType(t)
	}
}

func (t ActionType) String() string {
	if t >= ActionTypeCount {
		return "unknown"
	}
	return actionNames[t]
}

// ParseActionType resolves a canonical action name
func ParseActionType(name string) (ActionType, bool) {
	t, ok := actionRegistry[name]
	return t, ok
}
