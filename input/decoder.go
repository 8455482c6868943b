package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/core"
)

// Decoder turns raw tcell events into per-tick Input frames
// Events between two ticks accumulate; Drain hands the frame to the session
type Decoder struct {
	table *KeyTable
	field core.Field
	rows  int

	frame Input
}

// NewDecoder creates a decoder for a screen with the given number of rows
func NewDecoder(table *KeyTable, field core.Field, rows int) *Decoder {
	if table == nil {
		table = DefaultKeyTable()
	}
	if rows < 1 {
		rows = 1
	}
	return &Decoder{
		table: table,
		field: field,
		rows:  rows,
		frame: Input{Actions: make([]Action, 0, 8)},
	}
}

// Feed decodes one event against the current session state
func (d *Decoder) Feed(ev tcell.Event, state core.GameState) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		d.feedKey(ev, state)
	case *tcell.EventMouse:
		_, y := ev.Position()
		d.frame.PointerY = d.rowToField(y)
		d.frame.HasPointer = true
	case *tcell.EventResize:
		_, rows := ev.Size()
		if rows > 0 {
			d.rows = rows
		}
	}
}

func (d *Decoder) feedKey(ev *tcell.EventKey, state core.GameState) {
	key := ev.Key()
	if d.table.CloseKeys[key] {
		d.frame.Close = true
		return
	}

	if key == tcell.KeyRune {
		r := ev.Rune()
		if r >= '0' && r <= '9' {
			d.push(DigitAction(uint8(r - '0')))
			return
		}
		if entry, ok := d.table.Runes[r]; ok {
			d.push(Simple(entry.Resolve(state)))
		}
		return
	}

	if entry, ok := d.table.SpecialKeys[key]; ok {
		d.push(Simple(entry.Resolve(state)))
	}
}

func (d *Decoder) push(a Action) {
	if a.Type == ActionNone {
		return
	}
	d.frame.Actions = append(d.frame.Actions, a)
}

// rowToField maps a terminal row to the field y at the row's center
func (d *Decoder) rowToField(row int) float64 {
	return (float64(row) + 0.5) * d.field.Height / float64(d.rows)
}

// Drain returns the accumulated frame and starts a new one
// The returned Input owns its Actions slice
func (d *Decoder) Drain() Input {
	out := d.frame
	out.Actions = append([]Action(nil), d.frame.Actions...)
	d.frame.Reset()
	return out
}
