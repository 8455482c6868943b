package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// Side is the field edge a ball left through
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Ball is the moving square
// Invariant: |vy| <= BallMaxVerticalFactor * base * multiplier after every paddle contact
type Ball struct {
	Rect     core.Rect
	Velocity mgl64.Vec2

	field      core.Field
	multiplier float64
	rng        vmath.Source
}

// NewBall creates a centered ball launched on a random diagonal
func NewBall(field core.Field, multiplier float64, rng vmath.Source) *Ball {
	b := &Ball{
		Rect:       core.NewRect(0, 0, parameter.BallSize, parameter.BallSize),
		field:      field,
		multiplier: multiplier,
		rng:        rng,
	}
	b.Reset()
	return b
}

// Multiplier returns the speed multiplier the ball was last scaled to
func (b *Ball) Multiplier() float64 { return b.multiplier }

// Reset recenters the ball; vx and vy signs are drawn independently (4 diagonals)
func (b *Ball) Reset() {
	b.Rect.SetCenter(b.field.CenterX(), b.field.CenterY())
	base := parameter.BallBaseSpeed * b.multiplier
	vx := base * vmath.Sign(b.rng)
	vy := base * vmath.Sign(b.rng)
	b.Velocity = mgl64.Vec2{vx, vy}
}

// Update integrates one tick and reflects vy at the top or bottom bound
// Returns true on every tick the ball is at or beyond a vertical bound
func (b *Ball) Update() bool {
	b.Rect.X += b.Velocity.X()
	b.Rect.Y += b.Velocity.Y()

	if b.Rect.Top() <= 0 || b.Rect.Bottom() >= b.field.Height {
		b.Velocity[1] = -b.Velocity[1]
		return true
	}
	return false
}

// CheckCollision reflects the ball off the paddle on overlap and adds spin from the hit offset
// The ball is snapped flush to the paddle face so the next tick cannot re-trigger
func (b *Ball) CheckCollision(paddle Collider) bool {
	pr := paddle.Bounds()
	if !b.Rect.Intersects(pr) {
		return false
	}

	b.Velocity[0] = -b.Velocity[0]

	hitOffset := (b.Rect.CenterY() - pr.CenterY()) / (pr.H / 2)
	vy := b.Velocity.Y() + parameter.BallSpinFactor*hitOffset
	limit := parameter.BallMaxVerticalFactor * parameter.BallBaseSpeed * b.multiplier
	b.Velocity[1] = vmath.ClampSigned(vy, limit)

	if b.Velocity.X() > 0 {
		b.Rect.SetLeft(pr.Right())
	} else {
		b.Rect.SetRight(pr.Left())
	}
	return true
}

// UpdateSpeed rescales velocity to base*multiplier keeping direction; zero velocity is left alone
func (b *Ball) UpdateSpeed(multiplier float64) {
	b.multiplier = multiplier
	b.Velocity = vmath.Rescale(b.Velocity, parameter.BallBaseSpeed*multiplier)
}

// ExitSide reports which edge the ball has fully crossed, if any
func (b *Ball) ExitSide() Side {
	switch {
	case b.Rect.Right() < 0:
		return SideLeft
	case b.Rect.Left() > b.field.Width:
		return SideRight
	default:
		return SideNone
	}
}

// IsScored reports whether the ball has fully left the field horizontally
func (b *Ball) IsScored() bool {
	return b.ExitSide() != SideNone
}
