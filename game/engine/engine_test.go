package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig(lower, upper, limit int) *DifficultyConfig {
	return &DifficultyConfig{
		Name:         "engine-test",
		Title:        "Engine Test",
		LowerBound:   lower,
		UpperBound:   upper,
		AttemptLimit: limit,
	}
}

func TestNewEngine(t *testing.T) {
	config := createTestConfig(1, 100, 10)
	engine, err := NewEngine(config, FixedSource(42))
	require.NoError(t, err)
	require.NotNil(t, engine)

	state := engine.GetState()
	assert.Equal(t, StatusInProgress, state.Status)
	assert.Equal(t, 0, state.AttemptsUsed)
	assert.Empty(t, state.History)
	assert.Nil(t, state.Secret, "secret must stay hidden while in progress")
	assert.False(t, engine.IsGameOver())
	assert.False(t, engine.IsVictory())

	remaining, limited := engine.RemainingAttempts()
	assert.True(t, limited)
	assert.Equal(t, 10, remaining)
}

func TestNewEngine_InvalidRange(t *testing.T) {
	tests := []struct {
		name  string
		lower int
		upper int
	}{
		{"equal bounds", 5, 5},
		{"inverted bounds", 10, 1},
		{"below minimum bound", MinBound - 1, 10},
		{"above maximum bound", 1, MaxBound + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(createTestConfig(tt.lower, tt.upper, 0), FixedSource(tt.lower))
			require.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestNewEngine_InvalidLimit(t *testing.T) {
	_, err := NewEngine(createTestConfig(1, 10, -1), FixedSource(5))
	require.ErrorIs(t, err, ErrInvalidLimit)
}

func TestNewEngine_SourceErrors(t *testing.T) {
	t.Run("nil source", func(t *testing.T) {
		_, err := NewEngine(createTestConfig(1, 10, 0), nil)
		require.ErrorIs(t, err, ErrMissingNumberSource)
	})

	t.Run("secret outside range", func(t *testing.T) {
		_, err := NewEngine(createTestConfig(1, 10, 0), FixedSource(11))
		require.ErrorIs(t, err, ErrSecretOutOfRange)
	})
}

func TestNewEngine_SeededSourceIsDeterministic(t *testing.T) {
	config := createTestConfig(1, 1000, 0)

	first, err := NewEngine(config, NewSeededSource(7))
	require.NoError(t, err)
	second, err := NewEngine(config, NewSeededSource(7))
	require.NoError(t, err)

	assert.Equal(t, first.secret, second.secret)
	assert.True(t, config.Contains(first.secret))
}

func TestNewEngine_CopiesConfig(t *testing.T) {
	config := createTestConfig(1, 10, 3)
	engine, err := NewEngine(config, FixedSource(4))
	require.NoError(t, err)

	config.UpperBound = 1000
	config.AttemptLimit = 99

	assert.Equal(t, 10, engine.GetConfig().UpperBound)
	assert.Equal(t, 3, engine.GetConfig().AttemptLimit)
}

func TestGuess_MediumWinScenario(t *testing.T) {
	engine, err := NewEngine(createTestConfig(1, 100, 10), FixedSource(42))
	require.NoError(t, err)

	guesses := []int{50, 25, 37, 43, 42}
	expected := []Feedback{FeedbackTooHigh, FeedbackTooLow, FeedbackTooLow, FeedbackTooHigh, FeedbackCorrect}

	var got []Feedback
	for _, g := range guesses {
		feedback, err := engine.Guess(g)
		require.NoError(t, err)
		got = append(got, feedback)
	}

	assert.Equal(t, expected, got)
	assert.Equal(t, 5, engine.AttemptsUsed())
	assert.Equal(t, StatusWon, engine.GetState().Status)
	assert.True(t, engine.IsVictory())

	secret, ok := engine.Reveal()
	assert.True(t, ok)
	assert.Equal(t, 42, secret)
}

func TestGuess_HardLossScenario(t *testing.T) {
	engine, err := NewEngine(createTestConfig(1, 10, 3), FixedSource(7))
	require.NoError(t, err)

	for i, g := range []int{1, 2, 3} {
		feedback, err := engine.Guess(g)
		require.NoError(t, err)
		assert.Equal(t, FeedbackTooLow, feedback, "guess %d", i+1)
	}

	state := engine.GetState()
	assert.Equal(t, 3, state.AttemptsUsed)
	assert.Equal(t, StatusLost, state.Status)
	require.NotNil(t, state.Secret)
	assert.Equal(t, 7, *state.Secret)
	assert.NotNil(t, state.FinishedAt)
}

func TestGuess_WinOnLastAttempt(t *testing.T) {
	engine, err := NewEngine(createTestConfig(1, 10, 2), FixedSource(7))
	require.NoError(t, err)

	_, err = engine.Guess(1)
	require.NoError(t, err)
	feedback, err := engine.Guess(7)
	require.NoError(t, err)

	assert.Equal(t, FeedbackCorrect, feedback)
	assert.Equal(t, StatusWon, engine.GetState().Status)
}

func TestGuess_OutOfRangeCountsAsAttempt(t *testing.T) {
	engine, err := NewEngine(createTestConfig(1, 10, 2), FixedSource(7))
	require.NoError(t, err)

	feedback, err := engine.Guess(11)
	require.ErrorIs(t, err, ErrGuessOutOfRange)
	assert.Equal(t, FeedbackOutOfRange, feedback)
	assert.Equal(t, 1, engine.AttemptsUsed())
	assert.Equal(t, StatusInProgress, engine.GetState().Status)

	feedback, err = engine.Guess(0)
	require.ErrorIs(t, err, ErrGuessOutOfRange)
	assert.Equal(t, FeedbackOutOfRange, feedback)
	assert.Equal(t, 2, engine.AttemptsUsed())
	assert.Equal(t, StatusLost, engine.GetState().Status, "out of range guesses exhaust the limit")
}

func TestGuess_TerminatedSession(t *testing.T) {
	t.Run("after win", func(t *testing.T) {
		engine, err := NewEngine(createTestConfig(1, 10, 0), FixedSource(3))
		require.NoError(t, err)
		_, err = engine.Guess(3)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			_, err = engine.Guess(3)
			require.ErrorIs(t, err, ErrSessionTerminated)
		}
		assert.Equal(t, 1, engine.AttemptsUsed())
		assert.Len(t, engine.GetGuessHistory(), 1)
	})

	t.Run("after loss", func(t *testing.T) {
		engine, err := NewEngine(createTestConfig(1, 10, 1), FixedSource(3))
		require.NoError(t, err)
		_, err = engine.Guess(9)
		require.NoError(t, err)
		require.Equal(t, StatusLost, engine.GetState().Status)

		_, err = engine.Guess(3)
		require.ErrorIs(t, err, ErrSessionTerminated)
		assert.Equal(t, 1, engine.AttemptsUsed())
		assert.Equal(t, StatusLost, engine.GetState().Status, "status never reverts")
	})
}

func TestGuess_UnlimitedNeverLoses(t *testing.T) {
	engine, err := NewEngine(createTestConfig(1, 1000, Unlimited), FixedSource(1000))
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		_, err := engine.Guess(1)
		require.NoError(t, err)
	}
	assert.Equal(t, StatusInProgress, engine.GetState().Status)
	_, limited := engine.RemainingAttempts()
	assert.False(t, limited)
}

func TestGuessHistory(t *testing.T) {
	engine, err := NewEngine(createTestConfig(1, 10, 5), FixedSource(6))
	require.NoError(t, err)
	assert.Nil(t, engine.GetLastGuess())

	_, _ = engine.Guess(2)
	_, _ = engine.Guess(20)
	_, _ = engine.Guess(6)

	history := engine.GetGuessHistory()
	require.Len(t, history, 3)
	assert.Equal(t, GuessHistoryEntry{Attempt: 1, Guess: 2, Feedback: FeedbackTooLow, Timestamp: history[0].Timestamp}, history[0])
	assert.Equal(t, FeedbackOutOfRange, history[1].Feedback)
	assert.Equal(t, 3, history[2].Attempt)

	last := engine.GetLastGuess()
	require.NotNil(t, last)
	assert.Equal(t, FeedbackCorrect, last.Feedback)

	// Returned slices are copies.
	history[0].Guess = 99
	assert.Equal(t, 2, engine.GetGuessHistory()[0].Guess)
}

func TestGetState_SnapshotIsDetached(t *testing.T) {
	engine, err := NewEngine(createTestConfig(1, 10, 3), FixedSource(4))
	require.NoError(t, err)
	_, err = engine.Guess(4)
	require.NoError(t, err)

	state := engine.GetState()
	require.NotNil(t, state.FinishedAt)
	finishedAt := *state.FinishedAt

	*state.FinishedAt = finishedAt.Add(time.Hour)
	state.History[0].Guess = 99

	fresh := engine.GetState()
	assert.True(t, fresh.FinishedAt.Equal(finishedAt))
	assert.Equal(t, 4, fresh.History[0].Guess)
}

func TestGameEngine_SatisfiesEngine(t *testing.T) {
	eng, err := NewEngine(createTestConfig(1, 10, 0), FixedSource(7))
	require.NoError(t, err)
	var round Engine = eng

	feedback, err := round.Guess(3)
	require.NoError(t, err)
	assert.Equal(t, FeedbackTooLow, feedback)
	assert.False(t, round.IsGameOver())
}

func TestAttemptsNeverDecrease(t *testing.T) {
	engine, err := NewEngine(createTestConfig(-50, 50, 20), NewSeededSource(3))
	require.NoError(t, err)

	previous := engine.AttemptsUsed()
	for _, g := range []int{0, -60, 25, -25, 60, 10, -10} {
		_, _ = engine.Guess(g)
		assert.GreaterOrEqual(t, engine.AttemptsUsed(), previous)
		previous = engine.AttemptsUsed()
	}
}

func TestEvaluate(t *testing.T) {
	assert.Equal(t, FeedbackCorrect, Evaluate(5, 5))
	assert.Equal(t, FeedbackTooHigh, Evaluate(6, 5))
	assert.Equal(t, FeedbackTooLow, Evaluate(4, 5))
}
