package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/core"
)

func newTestDecoder() *Decoder {
	return NewDecoder(DefaultKeyTable(), core.DefaultField(), 24)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDecoderStateAwareArrows(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		state core.GameState
		want  ActionType
	}{
		{"up in menu", key(tcell.KeyUp), core.StateMenu, ActionSpeedUp},
		{"up playing", key(tcell.KeyUp), core.StatePlaying, ActionMoveUp},
		{"down paused", key(tcell.KeyDown), core.StatePaused, ActionSpeedDown},
		{"down playing", key(tcell.KeyDown), core.StatePlaying, ActionMoveDown},
		{"w playing", runeKey('w'), core.StatePlaying, ActionMoveUp},
		{"j menu", runeKey('j'), core.StateMenu, ActionSpeedDown},
		{"a", runeKey('a'), core.StateMenu, ActionCycleDifficulty},
		{"p", runeKey('p'), core.StatePlaying, ActionPauseToggle},
		{"space", runeKey(' '), core.StatePaused, ActionPauseToggle},
		{"m", runeKey('m'), core.StatePaused, ActionReturnToMenu},
		{"n playing", runeKey('n'), core.StatePlaying, ActionToggleMute},
		{"n menu", runeKey('n'), core.StateMenu, ActionToggleMute},
		{"plus", runeKey('+'), core.StateGameOver, ActionVolumeUp},
		{"equals", runeKey('='), core.StatePaused, ActionVolumeUp},
		{"minus", runeKey('-'), core.StatePlaying, ActionVolumeDown},
		{"enter", key(tcell.KeyEnter), core.StateMenu, ActionConfirm},
		{"escape", key(tcell.KeyEscape), core.StateGameOver, ActionQuit},
		{"backspace", key(tcell.KeyBackspace2), core.StateMenu, ActionBackspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDecoder()
			d.Feed(tt.ev, tt.state)
			in := d.Drain()
			if len(in.Actions) != 1 {
				t.Fatalf("got %d actions, want 1", len(in.Actions))
			}
			if in.Actions[0].Type != tt.want {
				t.Errorf("action = %s, want %s", in.Actions[0].Type, tt.want)
			}
		})
	}
}

func TestDecoderDigitsAndUnknownKeys(t *testing.T) {
	d := newTestDecoder()
	d.Feed(runeKey('4'), core.StateMenu)
	d.Feed(runeKey('x'), core.StateMenu)
	d.Feed(runeKey('2'), core.StateMenu)
	d.Feed(key(tcell.KeyF5), core.StateMenu)

	in := d.Drain()
	if len(in.Actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(in.Actions))
	}
	if in.Actions[0].Type != ActionDigit || in.Actions[0].Digit != 4 {
		t.Errorf("first action = %s, want digit(4)", in.Actions[0])
	}
	if in.Actions[1].Digit != 2 {
		t.Errorf("second action = %s, want digit(2)", in.Actions[1])
	}
}

func TestDecoderCloseKeys(t *testing.T) {
	d := newTestDecoder()
	d.Feed(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.StatePlaying)

	in := d.Drain()
	if !in.Close {
		t.Error("Ctrl+C should request close")
	}
	if len(in.Actions) != 0 {
		t.Errorf("close key produced actions: %v", in.Actions)
	}
}

func TestDecoderMousePointer(t *testing.T) {
	d := newTestDecoder()
	d.Feed(tcell.NewEventMouse(10, 11, tcell.ButtonNone, tcell.ModNone), core.StatePlaying)

	in := d.Drain()
	if !in.HasPointer {
		t.Fatal("expected pointer")
	}
	// Row 11 of 24 maps to the center of that row: 11.5 * 600 / 24
	if in.PointerY != 287.5 {
		t.Errorf("PointerY = %v, want 287.5", in.PointerY)
	}

	d.Feed(tcell.NewEventResize(80, 48), core.StatePlaying)
	d.Feed(tcell.NewEventMouse(10, 11, tcell.ButtonNone, tcell.ModNone), core.StatePlaying)
	in = d.Drain()
	if in.PointerY != 143.75 {
		t.Errorf("PointerY after resize = %v, want 143.75", in.PointerY)
	}
}

func TestDecoderDrainResets(t *testing.T) {
	d := newTestDecoder()
	d.Feed(key(tcell.KeyEnter), core.StateMenu)
	d.Feed(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone), core.StateMenu)

	first := d.Drain()
	second := d.Drain()
	if len(first.Actions) != 1 || !first.HasPointer {
		t.Fatalf("first frame incomplete: %+v", first)
	}
	if len(second.Actions) != 0 || second.HasPointer || second.Close {
		t.Errorf("second frame not reset: %+v", second)
	}

	// The first frame must not be aliased by later feeds
	d.Feed(key(tcell.KeyEscape), core.StateMenu)
	if first.Actions[0].Type != ActionConfirm {
		t.Errorf("drained frame mutated to %s", first.Actions[0].Type)
	}
}

func TestActionNames(t *testing.T) {
	for at := ActionType(0); at < ActionTypeCount; at++ {
		parsed, ok := ParseActionType(at.String())
		if !ok || parsed != at {
			t.Errorf("ParseActionType(%q) = %v, %v", at.String(), parsed, ok)
		}
	}
	if !Simple(ActionToggleMute).IsAudio() || !Simple(ActionVolumeDown).IsAudio() {
		t.Error("audio controls should report IsAudio")
	}
	if Simple(ActionQuit).IsAudio() || DigitAction(1).IsAudio() {
		t.Error("session actions should not report IsAudio")
	}
	if DigitAction(10).Type != ActionNone {
		t.Error("digit above 9 should yield ActionNone")
	}
	if DigitAction(3).String() != "digit(3)" {
		t.Errorf("String = %q", DigitAction(3).String())
	}
}
