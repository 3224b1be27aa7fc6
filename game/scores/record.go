package scores

import (
	"maps"
	"slices"
)

// Record maps a difficulty key to the fewest attempts ever needed to win it
type Record map[string]int

// Best returns the stored best score for key
func (r Record) Best(key string) (int, bool) {
	best, ok := r[key]
	return best, ok
}

// RecordResult registers a win. It returns an updated copy and true when key
// had no score yet or attempts beats the stored one; otherwise it returns r
// unchanged and false. r itself is never modified.
func (r Record) RecordResult(key string, attempts int) (Record, bool) {
	if attempts <= 0 {
		return r, false
	}
	if best, ok := r[key]; ok && attempts >= best {
		return r, false
	}

	updated := r.Clone()
	updated[key] = attempts
	return updated, true
}

// Clone returns an independent copy, never nil
func (r Record) Clone() Record {
	clone := make(Record, len(r))
	maps.Copy(clone, r)
	return clone
}

// Keys returns the difficulty keys in sorted order
func (r Record) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}
