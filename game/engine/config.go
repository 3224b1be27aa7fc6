package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRange        = errors.New("invalid range")
	ErrInvalidLimit        = errors.New("invalid attempt limit")
	ErrGuessOutOfRange     = errors.New("guess out of range")
	ErrSessionTerminated   = errors.New("session already terminated")
	ErrSecretOutOfRange    = errors.New("number source returned a value outside the range")
	ErrMissingNumberSource = errors.New("number source is required")
)

// ValidateDifficultyConfig validates the range and attempt budget of a difficulty
func ValidateDifficultyConfig(config *DifficultyConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config cannot be nil")
	}
	if config.LowerBound >= config.UpperBound {
		return fmt.Errorf("%w: lower bound %d must be less than upper bound %d",
			ErrInvalidRange, config.LowerBound, config.UpperBound)
	}
	if config.LowerBound < MinBound || config.UpperBound > MaxBound {
		return fmt.Errorf("%w: bounds must be between %d and %d, got [%d, %d]",
			ErrInvalidRange, MinBound, MaxBound, config.LowerBound, config.UpperBound)
	}
	if config.AttemptLimit < 0 {
		return fmt.Errorf("%w: must be positive or 0 for unlimited, got %d", ErrInvalidLimit, config.AttemptLimit)
	}
	return nil
}

// Contains reports whether n lies in the closed range of the difficulty
func (c *DifficultyConfig) Contains(n int) bool {
	return n >= c.LowerBound && n <= c.UpperBound
}

// HasLimit reports whether the difficulty has an attempt budget
func (c *DifficultyConfig) HasLimit() bool {
	return c.AttemptLimit > 0
}

// Span returns the number of candidate values in the range
func (c *DifficultyConfig) Span() int {
	return c.UpperBound - c.LowerBound + 1
}

// DisplayTitle returns the title for menus, falling back to the capitalized name
func (c *DifficultyConfig) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	if c.Name == "" {
		return ""
	}
	return strings.ToUpper(c.Name[:1]) + c.Name[1:]
}

// ScoreKey returns the key best scores are recorded under. Custom ranges get
// their bounds in the key so different ranges never share a best score.
func (c *DifficultyConfig) ScoreKey() string {
	if c.Name == DifficultyCustom || c.Name == "" {
		return fmt.Sprintf("%s_%d_%d", DifficultyCustom, c.LowerBound, c.UpperBound)
	}
	return c.Name
}

// AttemptsLabel describes the attempt budget, e.g. "7 attempts" or "unlimited"
func (c *DifficultyConfig) AttemptsLabel() string {
	if !c.HasLimit() {
		return "unlimited"
	}
	if c.AttemptLimit == 1 {
		return "1 attempt"
	}
	return fmt.Sprintf("%d attempts", c.AttemptLimit)
}
