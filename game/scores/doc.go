// Package scores provides best-score persistence for Perfect Guess.
//
// The scores package implements:
//   - The Record type, a mapping from difficulty key to fewest attempts to win
//   - Best-score updates that only ever lower a stored value
//   - JSON file persistence with write-temp-then-rename saves
//   - Tolerant loading: a missing or corrupt file is an empty record
//
// Core Types:
//
// Record holds best scores in memory. The package-level ReadFile, WriteFile
// and RemoveFile functions report failures as *PersistenceError. FileStore
// wraps them for gameplay code and downgrades every persistence failure to
// a logged warning plus a boolean result, so saving can never break a round.
//
// Usage:
//
//	store := scores.NewFileStore(scores.DefaultPath(), logger)
//
//	record := store.Load()
//	record, improved := record.RecordResult("medium", 5)
//	if improved {
//		store.Save(record)
//	}
//
// File Format:
//
// The score file is a JSON object mapping difficulty key to attempts, for
// example {"easy": 3, "medium": 5}. Concurrent writers are not coordinated;
// the last save wins.
package scores
