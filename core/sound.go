package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundWallHit   SoundType = iota // Ball reflects off top or bottom
	SoundPaddleHit                  // Ball reflects off either paddle
	SoundGoal                       // Ball leaves the field
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundWallHit:   "wall_hit",
	SoundPaddleHit: "paddle_hit",
	SoundGoal:      "goal_scored",
}

// String returns the file-style name used for exported sounds
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
