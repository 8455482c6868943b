package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/core"
)

// KeyEntry resolves one key differently on the settings panels and in play
// Settings covers Menu and Paused, Game covers Playing and GameOver
type KeyEntry struct {
	Game     ActionType
	Settings ActionType
}

// Resolve picks the action for the given session state
func (e KeyEntry) Resolve(state core.GameState) ActionType {
	switch state {
	case core.StateMenu, core.StatePaused:
		return e.Settings
	default:
		return e.Game
	}
}

// KeyTable maps keys to actions for all states
type KeyTable struct {
	// SpecialKeys covers named keys (arrows, Enter, Escape)
	SpecialKeys map[tcell.Key]KeyEntry

	// Runes covers printable keys; digits are handled separately
	Runes map[rune]KeyEntry

	// CloseKeys request an external close regardless of state
	CloseKeys map[tcell.Key]bool
}

func both(t ActionType) KeyEntry {
	return KeyEntry{Game: t, Settings: t}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:         {Game: ActionMoveUp, Settings: ActionSpeedUp},
			tcell.KeyDown:       {Game: ActionMoveDown, Settings: ActionSpeedDown},
			tcell.KeyEnter:      both(ActionConfirm),
			tcell.KeyEscape:     both(ActionQuit),
			tcell.KeyBackspace:  both(ActionBackspace),
			tcell.KeyBackspace2: both(ActionBackspace),
		},

		Runes: map[rune]KeyEntry{
			'w': {Game: ActionMoveUp, Settings: ActionSpeedUp},
			'k': {Game: ActionMoveUp, Settings: ActionSpeedUp},
			's': {Game: ActionMoveDown, Settings: ActionSpeedDown},
			'j': {Game: ActionMoveDown, Settings: ActionSpeedDown},
			'a': both(ActionCycleDifficulty),
			'p': both(ActionPauseToggle),
			' ': both(ActionPauseToggle),
			'm': both(ActionReturnToMenu),
			'n': both(ActionToggleMute),
			'+': both(ActionVolumeUp),
			'=': both(ActionVolumeUp),
			'-': both(ActionVolumeDown),
		},

		CloseKeys: map[tcell.Key]bool{
			tcell.KeyCtrlC: true,
			tcell.KeyCtrlQ: true,
		},
	}
}
