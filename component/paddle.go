package component

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

// Direction is a discrete paddle move command
type Direction int8

const (
	DirUp   Direction = -1
	DirDown Direction = 1
)

// Collider is anything the ball can bounce off
type Collider interface {
	Bounds() core.Rect
}

// Paddle is the player-controlled rectangle
// Invariant: Rect stays within [0, field.Height] vertically after every mutation
type Paddle struct {
	Rect  core.Rect
	field core.Field
	speed float64
}

// NewPaddle places a paddle with its top-left corner at (x, y)
func NewPaddle(field core.Field, x, y, multiplier float64) *Paddle {
	p := &Paddle{
		Rect:  core.NewRect(x, y, parameter.PaddleWidth, parameter.PaddleHeight),
		field: field,
	}
	p.UpdateSpeed(multiplier)
	p.Rect.ClampVertical(0, field.Height)
	return p
}

func (p *Paddle) Bounds() core.Rect { return p.Rect }

// Speed returns travel per Move call
func (p *Paddle) Speed() float64 { return p.speed }

// UpdateSpeed recomputes speed from the global multiplier
func (p *Paddle) UpdateSpeed(multiplier float64) {
	p.speed = parameter.PaddleBaseSpeed * multiplier
}

// Move shifts the paddle one step; pinned at the boundary it stays put
func (p *Paddle) Move(dir Direction) {
	switch dir {
	case DirUp:
		p.Rect.Y -= p.speed
	case DirDown:
		p.Rect.Y += p.speed
	default:
		return
	}
	p.Rect.ClampVertical(0, p.field.Height)
}

// SetPosition centers the paddle on y immediately, bypassing the speed limit
func (p *Paddle) SetPosition(y float64) {
	p.Rect.SetCenterY(y)
	p.Rect.ClampVertical(0, p.field.Height)
}
