package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wricardo/perfect-guess/game/config"
	"github.com/wricardo/perfect-guess/game/engine"
	"github.com/wricardo/perfect-guess/game/scores"
)

// ErrNilRound is returned when a guess is submitted without a round
var ErrNilRound = errors.New("round cannot be nil")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	configs ConfigManager
	store   ScoreStore
	source  engine.NumberSource
	record  scores.Record
	log     zerolog.Logger
}

// NewGameService creates a new game service instance. The best-score record
// is loaded from store once, here.
func NewGameService(configs ConfigManager, store ScoreStore, source engine.NumberSource, logger zerolog.Logger) GameService {
	return &gameServiceImpl{
		configs: configs,
		store:   store,
		source:  source,
		record:  store.Load(),
		log:     logger.With().Str("component", "service").Logger(),
	}
}

// ListDifficulties returns the presets in menu order
func (s *gameServiceImpl) ListDifficulties(ctx context.Context) ([]*engine.DifficultyConfig, error) {
	return s.configs.ListConfigs(), nil
}

// LoadDifficulty resolves a preset by name, or the default preset for ""
func (s *gameServiceImpl) LoadDifficulty(ctx context.Context, name string) (*engine.DifficultyConfig, error) {
	if name == "" {
		return s.configs.GetDefault(), nil
	}

	difficulty, err := s.configs.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("difficulty '%s' not found. Available difficulties: %s: %w",
				name, strings.Join(s.configs.Names(), ", "), err)
		}
		return nil, fmt.Errorf("failed to load difficulty %s: %w", name, err)
	}
	return difficulty, nil
}

// CustomDifficulty builds a custom range. limit 0 means unlimited.
func (s *gameServiceImpl) CustomDifficulty(ctx context.Context, lower, upper, limit int) (*engine.DifficultyConfig, error) {
	return s.configs.Custom(lower, upper, limit)
}

// NewRound starts a round for the difficulty
func (s *gameServiceImpl) NewRound(ctx context.Context, difficulty *engine.DifficultyConfig) (*Round, error) {
	if difficulty == nil {
		difficulty = s.configs.GetDefault()
	}

	eng, err := engine.NewEngine(difficulty, s.source)
	if err != nil {
		return nil, fmt.Errorf("failed to start round: %w", err)
	}

	cfg := eng.GetConfig()
	round := &Round{
		ID:        uuid.NewString(),
		Engine:    eng,
		Config:    &cfg,
		ScoreKey:  cfg.ScoreKey(),
		CreatedAt: time.Now(),
	}

	s.log.Debug().
		Str("round", round.ID).
		Str("difficulty", round.ScoreKey).
		Int("min", cfg.LowerBound).
		Int("max", cfg.UpperBound).
		Int("attempts", cfg.AttemptLimit).
		Msg("round started")

	return round, nil
}

// SubmitGuess applies a guess to the round. Out of range guesses are
// reported through GuessResult.OutOfRange rather than an error.
func (s *gameServiceImpl) SubmitGuess(ctx context.Context, round *Round, guess int) (*GuessResult, error) {
	if round == nil || round.Engine == nil {
		return nil, ErrNilRound
	}

	feedback, err := round.Engine.Guess(guess)
	outOfRange := errors.Is(err, engine.ErrGuessOutOfRange)
	if err != nil && !outOfRange {
		return nil, err
	}

	result := &GuessResult{
		Guess:        guess,
		Feedback:     feedback,
		OutOfRange:   outOfRange,
		AttemptsUsed: round.Engine.AttemptsUsed(),
		Status:       round.Engine.GetState().Status,
	}
	if remaining, limited := round.Engine.RemainingAttempts(); limited {
		result.Remaining = remaining
	} else {
		result.Unlimited = true
	}
	if secret, ok := round.Engine.Reveal(); ok {
		result.Secret = &secret
	}

	if result.Finished() {
		s.log.Info().
			Str("round", round.ID).
			Str("difficulty", round.ScoreKey).
			Str("status", string(result.Status)).
			Int("attempts", result.AttemptsUsed).
			Msg("round finished")
	}

	if result.Won() && !round.recorded {
		round.recorded = true
		s.recordWin(round, result)
	}

	return result, nil
}

// BestScores returns a copy of the in-memory best-score record
func (s *gameServiceImpl) BestScores(ctx context.Context) (scores.Record, error) {
	return s.record.Clone(), nil
}

// ResetScores deletes the persisted record and clears the in-memory one
func (s *gameServiceImpl) ResetScores(ctx context.Context) error {
	if err := s.store.Reset(); err != nil {
		return fmt.Errorf("failed to reset scores: %w", err)
	}
	s.record = scores.Record{}
	return nil
}

// recordWin updates the best score for the round and saves it. A failed
// save leaves Persisted false and the in-memory record updated.
func (s *gameServiceImpl) recordWin(round *Round, result *GuessResult) {
	if previous, ok := s.record.Best(round.ScoreKey); ok {
		result.PreviousBest = previous
	}

	updated, improved := s.record.RecordResult(round.ScoreKey, result.AttemptsUsed)
	if !improved {
		return
	}

	s.record = updated
	result.NewBest = true
	result.Persisted = s.store.Save(updated)

	s.log.Info().
		Str("difficulty", round.ScoreKey).
		Int("best", result.AttemptsUsed).
		Bool("persisted", result.Persisted).
		Msg("new best score")
}
