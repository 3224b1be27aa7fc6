package engine

import "math/bits"

// MaxBisectAttempts returns the worst-case number of guesses a bisection
// player needs to find any secret in [lower, upper], i.e. ceil(log2(n+1))
// for a range of n values. Returns 0 for an empty range.
func MaxBisectAttempts(lower, upper int) int {
	if upper < lower {
		return 0
	}
	return bits.Len(uint(upper - lower + 1))
}

// Midpoint returns the bisection guess for [lower, upper]
func Midpoint(lower, upper int) int {
	return lower + (upper-lower)/2
}

// IsWinnableByBisection reports whether a bisection player always wins
// within the attempt limit of the difficulty
func IsWinnableByBisection(config *DifficultyConfig) bool {
	if !config.HasLimit() {
		return true
	}
	return MaxBisectAttempts(config.LowerBound, config.UpperBound) <= config.AttemptLimit
}
