// Package service provides the business logic layer for Perfect Guess.
//
// The service package implements:
//   - Difficulty lookup and custom range construction
//   - Round creation with an injected number source
//   - Guess processing and result reporting
//   - Best-score bookkeeping after a win
//
// Core Interfaces:
//
// GameService is the main service interface used by front-ends.
// ConfigManager resolves difficulty presets and ScoreStore persists best
// scores; both are satisfied by the config and scores packages.
//
// Architecture:
//
// The service sits between the terminal front-end and the game engine. It
// keeps the best-score record in memory, updates it when a round is won and
// saves it on a best-effort basis: a failed save is reported in the
// GuessResult but never changes the outcome of the round.
//
// Usage:
//
//	gameService := service.NewGameService(configMgr, scoreStore, engine.NewSeededSource(7), logger)
//
//	difficulty, err := gameService.LoadDifficulty(ctx, "medium")
//	round, err := gameService.NewRound(ctx, difficulty)
//
//	result, err := gameService.SubmitGuess(ctx, round, 10)
//	if result.Won() && result.NewBest {
//		fmt.Println("new best!")
//	}
package service
