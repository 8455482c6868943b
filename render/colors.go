package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black field
	RgbForeground = tcell.NewRGBColor(255, 255, 255) // White entities and text
	RgbCenterLine = tcell.NewRGBColor(128, 128, 128) // Gray net
	RgbPanel      = tcell.NewRGBColor(40, 40, 40)    // Dark gray settings panel
	RgbHint       = tcell.NewRGBColor(128, 128, 128) // Gray control hints
	RgbWarning    = tcell.NewRGBColor(255, 165, 0)   // Orange armed-exit hint
)

// Styles derived from the palette
var (
	StyleField  = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground)
	StyleEntity = tcell.StyleDefault.Background(RgbForeground).Foreground(RgbForeground)
	StyleNet    = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbCenterLine)
	StylePanel  = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbForeground)
	StyleBorder = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbForeground).Bold(true)
	StyleHint   = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbHint)
	StyleWarn   = tcell.StyleDefault.Background(RgbPanel).Foreground(RgbWarning).Bold(true)
)

// Glyphs
const (
	GlyphBlock = '█'
	GlyphNet   = '┆'
	GlyphHoriz = '─'
	GlyphVert  = '│'
	GlyphTopL  = '┌'
	GlyphTopR  = '┐'
	GlyphBotL  = '└'
	GlyphBotR  = '┘'
	GlyphBlank = ' '
)
