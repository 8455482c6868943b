package vmath

// --- Randomness ---

// Source is the pseudorandom source shared by the simulation
// A single source drives both AI jitter and ball launch direction
type Source interface {
	Intn(n int) int
}

// FastRand is a xorshift64 generator; seed it for reproducible runs
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a uniform integer in [lo, hi], both ends inclusive
func IntRange(rng Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Sign returns -1 or +1 with equal probability
func Sign(rng Source) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
