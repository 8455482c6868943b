package core

import "github.com/lixenwraith/pong/parameter"

// Field carries the playing-field geometry into every component that clamps or bounces
type Field struct {
	Width, Height float64
}

// DefaultField returns the standard 800x600 field
func DefaultField() Field {
	return Field{Width: parameter.FieldWidth, Height: parameter.FieldHeight}
}

func (f Field) CenterX() float64 { return f.Width / 2 }
func (f Field) CenterY() float64 { return f.Height / 2 }
