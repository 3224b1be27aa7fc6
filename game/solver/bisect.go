// Package solver plays rounds automatically. Bisect halves the candidate
// range after every hint, so it always wins within
// engine.MaxBisectAttempts guesses when the limit allows it.
package solver

import (
	"errors"
	"fmt"

	"github.com/wricardo/perfect-guess/game/engine"
)

var (
	// ErrInconsistentFeedback means the hints exclude every candidate
	ErrInconsistentFeedback = errors.New("feedback is inconsistent with earlier hints")
	// ErrUnexpectedFeedback means the round rejected an in-range guess
	ErrUnexpectedFeedback = errors.New("unexpected feedback")
)

// Strategy picks guesses from feedback
type Strategy interface {
	Next() int
	Observe(guess int, feedback engine.Feedback) error
}

// Guesser is the part of a round a strategy plays against
type Guesser interface {
	Guess(guess int) (engine.Feedback, error)
	IsGameOver() bool
}

// Bisect guesses the midpoint of the remaining candidates
type Bisect struct {
	low  int
	high int
}

// NewBisect creates a bisection strategy for [lower, upper]
func NewBisect(lower, upper int) *Bisect {
	return &Bisect{low: lower, high: upper}
}

// Next returns the midpoint of the remaining candidates
func (b *Bisect) Next() int {
	return engine.Midpoint(b.low, b.high)
}

// Remaining returns the candidate range still consistent with the hints
func (b *Bisect) Remaining() (int, int) {
	return b.low, b.high
}

// Observe narrows the candidates using the feedback for guess
func (b *Bisect) Observe(guess int, feedback engine.Feedback) error {
	switch feedback {
	case engine.FeedbackCorrect:
		b.low, b.high = guess, guess
	case engine.FeedbackTooHigh:
		b.high = guess - 1
	case engine.FeedbackTooLow:
		b.low = guess + 1
	default:
		return fmt.Errorf("%w: %q for %d", ErrUnexpectedFeedback, feedback, guess)
	}

	if b.low > b.high {
		return fmt.Errorf("%w: no candidates left after %d", ErrInconsistentFeedback, guess)
	}
	return nil
}

// Step is one guess made by Play
type Step struct {
	Guess    int
	Feedback engine.Feedback
}

// Play drives the round with strategy until it is over and returns the
// guesses made
func Play(round Guesser, strategy Strategy) ([]Step, error) {
	var steps []Step

	for !round.IsGameOver() {
		guess := strategy.Next()
		feedback, err := round.Guess(guess)
		if err != nil {
			return steps, fmt.Errorf("failed to guess %d: %w", guess, err)
		}
		steps = append(steps, Step{Guess: guess, Feedback: feedback})

		if err := strategy.Observe(guess, feedback); err != nil {
			return steps, err
		}
	}

	return steps, nil
}

// Solve plays a fresh bisection strategy against an engine round
func Solve(round *engine.GameEngine) ([]Step, error) {
	config := round.GetConfig()
	return Play(round, NewBisect(config.LowerBound, config.UpperBound))
}
