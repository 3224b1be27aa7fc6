package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxBisectAttempts(t *testing.T) {
	tests := []struct {
		lower, upper int
		expected     int
	}{
		{1, 1, 1},
		{1, 2, 2},
		{1, 3, 2},
		{1, 9, 4},
		{1, 10, 4},
		{1, 20, 5},
		{1, 50, 6},
		{1, 100, 7},
		{1, 1000, 10},
		{-500, 500, 10},
		{5, 4, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaxBisectAttempts(tt.lower, tt.upper), "[%d, %d]", tt.lower, tt.upper)
	}
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, 50, Midpoint(1, 100))
	assert.Equal(t, 0, Midpoint(-1, 1))
	assert.Equal(t, -3, Midpoint(-5, -1))
}

func TestIsWinnableByBisection(t *testing.T) {
	assert.True(t, IsWinnableByBisection(&DifficultyConfig{LowerBound: 1, UpperBound: 9}))
	assert.True(t, IsWinnableByBisection(&DifficultyConfig{LowerBound: 1, UpperBound: 20, AttemptLimit: 7}))
	assert.False(t, IsWinnableByBisection(&DifficultyConfig{LowerBound: 1, UpperBound: 50, AttemptLimit: 5}))
}
