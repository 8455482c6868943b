package parameter

import "fmt"

// Difficulty selects an AI tuning profile
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyCount
)

// DifficultyProfile holds the three independent AI tunables
type DifficultyProfile struct {
	// ImperfectionRange is the half-width of the uniform jitter added to the tracked y
	ImperfectionRange int
	// ReactionThreshold is the half-width of the dead zone around the target
	ReactionThreshold float64
	// SpeedFactor scales the paddle speed derived from the global multiplier
	SpeedFactor float64
}

var difficultyProfiles = [DifficultyCount]DifficultyProfile{
	DifficultyEasy:   {ImperfectionRange: 40, ReactionThreshold: 20, SpeedFactor: 0.7},
	DifficultyMedium: {ImperfectionRange: 20, ReactionThreshold: 10, SpeedFactor: 1.0},
	DifficultyHard:   {ImperfectionRange: 5, ReactionThreshold: 5, SpeedFactor: 1.2},
}

var difficultyNames = [DifficultyCount]string{
	DifficultyEasy:   "easy",
	DifficultyMedium: "medium",
	DifficultyHard:   "hard",
}

// DefaultDifficulty is used when nothing else was configured
const DefaultDifficulty = DifficultyMedium

// Profile returns the immutable tuning for d; unknown values fall back to medium
func (d Difficulty) Profile() DifficultyProfile {
	if d >= DifficultyCount {
		return difficultyProfiles[DefaultDifficulty]
	}
	return difficultyProfiles[d]
}

// Next cycles easy -> medium -> hard -> easy
func (d Difficulty) Next() Difficulty {
	return (d + 1) % DifficultyCount
}

func (d Difficulty) String() string {
	if d >= DifficultyCount {
		return fmt.Sprintf("difficulty(%d)", uint8(d))
	}
	return difficultyNames[d]
}

// ParseDifficulty maps a name back to its Difficulty
func ParseDifficulty(name string) (Difficulty, error) {
	for d, n := range difficultyNames {
		if n == name {
			return Difficulty(d), nil
		}
	}
	return DefaultDifficulty, fmt.Errorf("unknown difficulty %q", name)
}

// UnmarshalText lets env/flag decoders accept difficulty names
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText returns the difficulty name
func (d Difficulty) MarshalText() ([]byte, error) {
	if d >= DifficultyCount {
		return nil, fmt.Errorf("unknown difficulty %d", uint8(d))
	}
	return []byte(difficultyNames[d]), nil
}
