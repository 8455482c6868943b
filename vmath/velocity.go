package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// zeroEpsilon is the magnitude below which a velocity has no usable direction
const zeroEpsilon = 1e-9

// Rescale returns v with its magnitude set to speed, direction preserved
// A zero vector has no direction and is returned unchanged
func Rescale(v mgl64.Vec2, speed float64) mgl64.Vec2 {
	length := v.Len()
	if length < zeroEpsilon {
		return v
	}
	return v.Mul(speed / length)
}

// ClampSigned bounds |value| to limit, keeping the sign of value
func ClampSigned(value, limit float64) float64 {
	if math.Abs(value) <= limit {
		return value
	}
	return math.Copysign(limit, value)
}
