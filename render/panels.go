package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/parameter"
)

// panel is a bordered box centered on the screen
type panel struct {
	x, y, w, h int
}

func (r *TerminalRenderer) centeredPanel(w, h int) panel {
	if w > r.width {
		w = r.width
	}
	if h > r.height {
		h = r.height
	}
	return panel{x: (r.width - w) / 2, y: (r.height - h) / 2, w: w, h: h}
}

func (r *TerminalRenderer) drawPanel(p panel) {
	if p.w < 2 || p.h < 2 {
		return
	}
	r.fill(p.x, p.y, p.w, p.h, GlyphBlank, StylePanel)
	right := p.x + p.w - 1
	bottom := p.y + p.h - 1
	for x := p.x + 1; x < right; x++ {
		r.screen.SetContent(x, p.y, GlyphHoriz, nil, StyleBorder)
		r.screen.SetContent(x, bottom, GlyphHoriz, nil, StyleBorder)
	}
	for y := p.y + 1; y < bottom; y++ {
		r.screen.SetContent(p.x, y, GlyphVert, nil, StyleBorder)
		r.screen.SetContent(right, y, GlyphVert, nil, StyleBorder)
	}
	r.screen.SetContent(p.x, p.y, GlyphTopL, nil, StyleBorder)
	r.screen.SetContent(right, p.y, GlyphTopR, nil, StyleBorder)
	r.screen.SetContent(p.x, bottom, GlyphBotL, nil, StyleBorder)
	r.screen.SetContent(right, bottom, GlyphBotR, nil, StyleBorder)
}

// lines writes rows centered inside the panel starting one row below the border
func (r *TerminalRenderer) lines(p panel, rows []panelLine) {
	for i, l := range rows {
		y := p.y + 1 + i
		if y >= p.y+p.h-1 {
			return
		}
		r.centered(y, l.text, l.style)
	}
}

type panelLine struct {
	text  string
	style tcell.Style
}

func maxScoreLabel(snap engine.Snapshot) string {
	if snap.MaxScoreInput == "" {
		return fmt.Sprintf("%d (default)", parameter.MaxScoreDefault)
	}
	return snap.MaxScoreInput + "_"
}

func (r *TerminalRenderer) drawMenu(snap engine.Snapshot) {
	r.centered(r.height/6, "P O N G", StyleField.Bold(true))

	p := r.centeredPanel(44, 12)
	r.drawPanel(p)
	r.lines(p, []panelLine{
		{fmt.Sprintf("Game Speed:    %.1fx", snap.SpeedMultiplier), StylePanel},
		{"UP/DOWN to adjust", StyleHint},
		{"", StylePanel},
		{"AI Difficulty: " + strings.ToUpper(snap.Difficulty.String()), StylePanel},
		{"Press A to cycle", StyleHint},
		{"", StylePanel},
		{"Max Score:     " + maxScoreLabel(snap), StylePanel},
		{fmt.Sprintf("Type %d-%d, BACKSPACE to edit", parameter.MaxScoreMin, parameter.MaxScoreMax), StyleHint},
		{"", StylePanel},
		{"Press ENTER to start", StylePanel},
	})
}

func (r *TerminalRenderer) drawPaused(snap engine.Snapshot) {
	p := r.centeredPanel(44, 12)
	r.drawPanel(p)
	rows := []panelLine{
		{"PAUSED", StyleBorder},
		{"", StylePanel},
		{fmt.Sprintf("Game Speed:    %.1fx", snap.SpeedMultiplier), StylePanel},
		{"UP/DOWN to adjust", StyleHint},
		{"AI Difficulty: " + strings.ToUpper(snap.Difficulty.String()), StylePanel},
		{"Press A to cycle", StyleHint},
		{"", StylePanel},
		{"ENTER resume   M menu   ESC ESC exit", StyleHint},
		{"N mute   +/- volume", StyleHint},
	}
	if snap.EscapeArmed {
		rows = append(rows, panelLine{"Press ESC again to exit", StyleWarn})
	}
	r.lines(p, rows)
}

func (r *TerminalRenderer) drawGameOver(snap engine.Snapshot) {
	p := r.centeredPanel(40, 8)
	r.drawPanel(p)

	headline := "AI WINS"
	if snap.Winner == core.PlayerHuman {
		headline = "YOU WIN"
	}
	rows := []panelLine{
		{"GAME OVER", StyleBorder},
		{headline, StylePanel},
		{fmt.Sprintf("%d - %d", snap.PlayerScore, snap.AIScore), StylePanel},
		{"", StylePanel},
		{"Press ESC twice to exit", StyleHint},
	}
	if snap.EscapeArmed {
		rows[4] = panelLine{"Press ESC again to exit", StyleWarn}
	}
	r.lines(p, rows)
}
