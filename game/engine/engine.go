package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for a single round
type Engine interface {
	// Round state
	GetState() *GameState
	IsGameOver() bool
	IsVictory() bool
	AttemptsUsed() int
	RemainingAttempts() (int, bool)
	Reveal() (int, bool)

	// Guessing
	Guess(guess int) (Feedback, error)

	// Configuration
	GetConfig() DifficultyConfig

	// History
	GetGuessHistory() []GuessHistoryEntry
	GetLastGuess() *GuessHistoryEntry
}

var _ Engine = (*GameEngine)(nil)

// GameEngine implements the Engine interface
type GameEngine struct {
	config DifficultyConfig
	secret int
	state  *GameState
	now    func() time.Time
}

// NewEngine validates the difficulty, draws the secret from source and
// returns a round in progress
func NewEngine(config *DifficultyConfig, source NumberSource) (*GameEngine, error) {
	if err := ValidateDifficultyConfig(config); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ErrMissingNumberSource
	}

	secret := source.IntRange(config.LowerBound, config.UpperBound)
	if !config.Contains(secret) {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrSecretOutOfRange, secret, config.LowerBound, config.UpperBound)
	}

	engine := &GameEngine{
		config: *config,
		secret: secret,
		now:    time.Now,
	}
	engine.state = &GameState{
		Config:  engine.config,
		Status:  StatusInProgress,
		History: []GuessHistoryEntry{},
	}
	engine.state.StartedAt = engine.now()

	return engine, nil
}

// GetState returns a copy of the current round state
func (e *GameEngine) GetState() *GameState {
	state := *e.state
	state.History = append([]GuessHistoryEntry(nil), e.state.History...)
	if e.state.FinishedAt != nil {
		finishedAt := *e.state.FinishedAt
		state.FinishedAt = &finishedAt
	}
	if secret, ok := e.Reveal(); ok {
		state.Secret = &secret
	}
	return &state
}

// IsGameOver returns whether the round has finished
func (e *GameEngine) IsGameOver() bool {
	return e.state.Status.IsTerminal()
}

// IsVictory returns whether the player has won
func (e *GameEngine) IsVictory() bool {
	return e.state.Status == StatusWon
}

// AttemptsUsed returns the number of counted attempts
func (e *GameEngine) AttemptsUsed() int {
	return e.state.AttemptsUsed
}

// RemainingAttempts returns the attempts left and false for unlimited rounds
func (e *GameEngine) RemainingAttempts() (int, bool) {
	if !e.config.HasLimit() {
		return 0, false
	}
	remaining := e.config.AttemptLimit - e.state.AttemptsUsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// Reveal returns the secret once the round is over
func (e *GameEngine) Reveal() (int, bool) {
	if !e.IsGameOver() {
		return 0, false
	}
	return e.secret, true
}

// Guess submits a guess and returns its feedback.
//
// Every call on a round in progress counts as an attempt. A guess outside
// the range returns FeedbackOutOfRange together with an error wrapping
// ErrGuessOutOfRange; it still counts toward the attempt limit.
func (e *GameEngine) Guess(guess int) (Feedback, error) {
	if e.IsGameOver() {
		return "", fmt.Errorf("%w: round is %s", ErrSessionTerminated, e.state.Status)
	}

	e.state.AttemptsUsed++

	feedback := Evaluate(guess, e.secret)
	var err error
	if !e.config.Contains(guess) {
		feedback = FeedbackOutOfRange
		err = fmt.Errorf("%w: %d is not between %d and %d", ErrGuessOutOfRange, guess, e.config.LowerBound, e.config.UpperBound)
	}

	switch {
	case feedback == FeedbackCorrect:
		e.finish(StatusWon)
	case e.config.HasLimit() && e.state.AttemptsUsed >= e.config.AttemptLimit:
		e.finish(StatusLost)
	}

	e.state.LastFeedback = feedback
	e.state.History = append(e.state.History, GuessHistoryEntry{
		Attempt:   e.state.AttemptsUsed,
		Guess:     guess,
		Feedback:  feedback,
		Timestamp: e.now().Unix(),
	})

	return feedback, err
}

// GetConfig returns the difficulty of the round
func (e *GameEngine) GetConfig() DifficultyConfig {
	return e.config
}

// GetGuessHistory returns the counted attempts in order
func (e *GameEngine) GetGuessHistory() []GuessHistoryEntry {
	return append([]GuessHistoryEntry(nil), e.state.History...)
}

// GetLastGuess returns the last attempt, or nil if no guesses were made
func (e *GameEngine) GetLastGuess() *GuessHistoryEntry {
	if len(e.state.History) == 0 {
		return nil
	}
	last := e.state.History[len(e.state.History)-1]
	return &last
}

func (e *GameEngine) finish(status Status) {
	finishedAt := e.now()
	e.state.Status = status
	e.state.FinishedAt = &finishedAt
}

// Evaluate compares a guess with the secret
func Evaluate(guess, secret int) Feedback {
	switch {
	case guess == secret:
		return FeedbackCorrect
	case guess > secret:
		return FeedbackTooHigh
	default:
		return FeedbackTooLow
	}
}
