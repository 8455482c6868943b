package parameter

// Movement
const (
	// PaddleBaseSpeed is paddle travel per tick at multiplier 1.0
	PaddleBaseSpeed = 5.0

	// BallBaseSpeed is the per-axis launch speed per tick at multiplier 1.0
	BallBaseSpeed = 5.0

	// BallSpinFactor scales the normalized hit offset added to vy on paddle contact
	BallSpinFactor = 2.0

	// BallMaxVerticalFactor bounds |vy| to this many base speeds after a paddle contact
	BallMaxVerticalFactor = 2.0
)

// Speed Multiplier
// Stored as integer tenths so repeated +/-0.1 steps never drift
const (
	SpeedTenthsMin     = 5
	SpeedTenthsMax     = 30
	SpeedTenthsDefault = 10
	SpeedTenthsStep    = 1
)

// Win Condition
const (
	MaxScoreMin     = 1
	MaxScoreMax     = 50
	MaxScoreDefault = 10
)
