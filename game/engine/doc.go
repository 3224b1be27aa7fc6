// Package engine provides the core game logic for Perfect Guess.
//
// The engine package implements one round of the number-guessing game:
//   - Range and attempt-limit validation for a difficulty
//   - Secret selection through an injected NumberSource
//   - Attempt counting and directional feedback
//   - Win/loss termination and guess history
//
// Core Types:
//
// The Engine interface defines the contract for a round, implemented by
// GameEngine. DifficultyConfig describes the range and attempt budget, and
// GameState is a snapshot of the round that callers may render or persist.
//
// Usage:
//
//	cfg := &engine.DifficultyConfig{Name: "medium", LowerBound: 1, UpperBound: 20, AttemptLimit: 7}
//
//	round, err := engine.NewEngine(cfg, engine.NewSeededSource(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	feedback, err := round.Guess(10)
//	state := round.GetState()
//
// Game Rules:
//
// Every guess counts as an attempt, including guesses outside the range,
// which are answered with OutOfRange and ErrGuessOutOfRange. A correct guess
// wins the round. Otherwise, once the attempt limit is reached the round is
// lost. Finished rounds reject further guesses with ErrSessionTerminated.
package engine
