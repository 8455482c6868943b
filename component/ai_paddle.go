package component

import (
	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/vmath"
)

// AIPaddle is the autonomous paddle
// Geometry and speed mirror Paddle; the difficulty profile drives Update
type AIPaddle struct {
	Rect core.Rect

	field      core.Field
	difficulty parameter.Difficulty
	profile    parameter.DifficultyProfile
	multiplier float64
	speed      float64
	rng        vmath.Source

	// Target is the y the last Update steered toward
	Target float64
}

// NewAIPaddle places an AI paddle with its top-left corner at (x, y)
func NewAIPaddle(field core.Field, x, y, multiplier float64, difficulty parameter.Difficulty, rng vmath.Source) *AIPaddle {
	a := &AIPaddle{
		Rect:   core.NewRect(x, y, parameter.PaddleWidth, parameter.PaddleHeight),
		field:  field,
		rng:    rng,
		Target: field.CenterY(),
	}
	a.Rect.ClampVertical(0, field.Height)
	a.SetDifficulty(difficulty)
	a.UpdateSpeed(multiplier)
	return a
}

func (a *AIPaddle) Bounds() core.Rect { return a.Rect }

func (a *AIPaddle) Speed() float64 { return a.speed }

func (a *AIPaddle) Difficulty() parameter.Difficulty { return a.difficulty }

func (a *AIPaddle) Profile() parameter.DifficultyProfile { return a.profile }

// SetDifficulty swaps the profile only; call UpdateSpeed afterwards to apply its speed factor
func (a *AIPaddle) SetDifficulty(d parameter.Difficulty) {
	a.difficulty = d
	a.profile = d.Profile()
}

// UpdateSpeed derives effective speed from the multiplier and the current profile
func (a *AIPaddle) UpdateSpeed(multiplier float64) {
	a.multiplier = multiplier
	a.speed = parameter.PaddleBaseSpeed * multiplier * a.profile.SpeedFactor
}

// Update steers one tick toward the ball when it approaches, or toward field center otherwise
// Jitter is resampled each tick; no movement inside the dead zone around the target
func (a *AIPaddle) Update(ball *Ball) {
	if a.approaching(ball) {
		r := a.profile.ImperfectionRange
		a.Target = ball.Rect.CenterY() + float64(vmath.IntRange(a.rng, -r, r))
	} else {
		a.Target = a.field.CenterY()
	}

	center := a.Rect.CenterY()
	threshold := a.profile.ReactionThreshold
	switch {
	case center < a.Target-threshold:
		a.Rect.Y += a.speed
	case center > a.Target+threshold:
		a.Rect.Y -= a.speed
	default:
		return
	}
	a.Rect.ClampVertical(0, a.field.Height)
}

// approaching reports whether the ball's horizontal velocity points at this paddle's side
func (a *AIPaddle) approaching(ball *Ball) bool {
	vx := ball.Velocity.X()
	if a.Rect.CenterX() >= a.field.CenterX() {
		return vx > 0
	}
	return vx < 0
}
