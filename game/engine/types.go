package engine

import "time"

// Status represents the lifecycle state of a round
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// IsTerminal reports whether no further guesses are accepted
func (s Status) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}

// Feedback is the hint returned for a single guess
type Feedback string

const (
	FeedbackCorrect    Feedback = "correct"
	FeedbackTooHigh    Feedback = "too_high"
	FeedbackTooLow     Feedback = "too_low"
	FeedbackOutOfRange Feedback = "out_of_range"
)

// Difficulty names and validation constants
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyCustom = "custom"

	// Bounds are kept well inside int range so span arithmetic cannot overflow.
	MinBound = -1_000_000_000
	MaxBound = 1_000_000_000

	// Unlimited is the AttemptLimit value for rounds without an attempt budget.
	Unlimited = 0
)

// DifficultyConfig describes the guess range and attempt budget of a round
type DifficultyConfig struct {
	Name         string `json:"name" yaml:"name"`
	Title        string `json:"title,omitempty" yaml:"title,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	LowerBound   int    `json:"min" yaml:"min"`
	UpperBound   int    `json:"max" yaml:"max"`
	AttemptLimit int    `json:"attempts,omitempty" yaml:"attempts,omitempty"` // 0 means unlimited
}

// GuessHistoryEntry records one counted attempt
type GuessHistoryEntry struct {
	Attempt   int      `json:"attempt"`
	Guess     int      `json:"guess"`
	Feedback  Feedback `json:"feedback"`
	Timestamp int64    `json:"timestamp"`
}

// GameState is a snapshot of a round. The secret is only present once the
// round is over.
type GameState struct {
	Config       DifficultyConfig    `json:"config"`
	AttemptsUsed int                 `json:"attempts_used"`
	Status       Status              `json:"status"`
	LastFeedback Feedback            `json:"last_feedback,omitempty"`
	History      []GuessHistoryEntry `json:"history"`
	StartedAt    time.Time           `json:"started_at"`
	FinishedAt   *time.Time          `json:"finished_at,omitempty"`
	Secret       *int                `json:"secret,omitempty"`
}
