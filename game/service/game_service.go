package service

import (
	"context"
	"time"

	"github.com/wricardo/perfect-guess/game/engine"
	"github.com/wricardo/perfect-guess/game/scores"
)

// GameService defines all game-related operations
type GameService interface {
	// Difficulties
	ListDifficulties(ctx context.Context) ([]*engine.DifficultyConfig, error)
	LoadDifficulty(ctx context.Context, name string) (*engine.DifficultyConfig, error)
	CustomDifficulty(ctx context.Context, lower, upper, limit int) (*engine.DifficultyConfig, error)

	// Rounds
	NewRound(ctx context.Context, config *engine.DifficultyConfig) (*Round, error)
	SubmitGuess(ctx context.Context, round *Round, guess int) (*GuessResult, error)

	// Best scores
	BestScores(ctx context.Context) (scores.Record, error)
	ResetScores(ctx context.Context) error
}

// ConfigManager handles difficulty preset lookup
type ConfigManager interface {
	LoadConfig(name string) (*engine.DifficultyConfig, error)
	ListConfigs() []*engine.DifficultyConfig
	Names() []string
	GetDefault() *engine.DifficultyConfig
	Custom(lower, upper, limit int) (*engine.DifficultyConfig, error)
}

// ScoreStore persists best scores. Load and Save never fail; Save reports
// whether the record reached storage.
type ScoreStore interface {
	Load() scores.Record
	Save(record scores.Record) bool
	Reset() error
}

// Round is one game played through the service
type Round struct {
	ID        string
	Engine    *engine.GameEngine
	Config    *engine.DifficultyConfig
	ScoreKey  string
	CreatedAt time.Time

	recorded bool
}
