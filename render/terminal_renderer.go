package render

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
)

// TerminalRenderer draws session snapshots onto a tcell screen
// Field units are scaled independently on each axis to the current screen size
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer bound to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen dimensions
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// RenderFrame draws one complete frame and shows it
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.Clear()
	r.fill(0, 0, r.width, r.height, GlyphBlank, StyleField)

	switch snap.State {
	case core.StateMenu:
		r.drawMenu(snap)
	case core.StatePlaying:
		r.drawField(snap)
	case core.StatePaused:
		r.drawField(snap)
		r.drawPaused(snap)
	case core.StateGameOver:
		r.drawField(snap)
		r.drawGameOver(snap)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawField(snap engine.Snapshot) {
	// Center net
	netX := r.col(snap.Field, snap.Field.CenterX())
	for y := 0; y < r.height; y += 2 {
		r.screen.SetContent(netX, y, GlyphNet, nil, StyleNet)
	}

	r.drawRect(snap.Field, snap.PlayerPaddle)
	r.drawRect(snap.Field, snap.AIPaddle)
	r.drawRect(snap.Field, snap.Ball)

	// Scores at quarter widths
	r.text(r.width/4, 1, strconv.Itoa(snap.PlayerScore), StyleField)
	r.text(3*r.width/4, 1, strconv.Itoa(snap.AIScore), StyleField)
}

// drawRect fills every cell the rect touches, at least one cell
func (r *TerminalRenderer) drawRect(field core.Field, rect core.Rect) {
	x0 := r.col(field, rect.Left())
	y0 := r.row(field, rect.Top())
	x1 := int(math.Ceil(rect.Right()*float64(r.width)/field.Width)) - 1
	y1 := int(math.Ceil(rect.Bottom()*float64(r.height)/field.Height)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x >= 0 && x < r.width && y >= 0 && y < r.height {
				r.screen.SetContent(x, y, GlyphBlock, nil, StyleEntity)
			}
		}
	}
}

func (r *TerminalRenderer) col(field core.Field, x float64) int {
	return int(math.Floor(x * float64(r.width) / field.Width))
}

func (r *TerminalRenderer) row(field core.Field, y float64) int {
	return int(math.Floor(y * float64(r.height) / field.Height))
}

func (r *TerminalRenderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for c := x; c < x+w; c++ {
			r.screen.SetContent(c, row, ch, nil, style)
		}
	}
}

// text writes s starting at (x, y), clipped to the screen
func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= r.height {
		return
	}
	for _, ch := range s {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// centered writes s horizontally centered on the screen at row y
func (r *TerminalRenderer) centered(y int, s string, style tcell.Style) {
	r.text((r.width-len([]rune(s)))/2, y, s, style)
}
