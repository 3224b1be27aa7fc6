package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NumberSource draws the secret for a round. IntRange must return a value
// uniformly distributed in the closed range [low, high].
type NumberSource interface {
	IntRange(low, high int) int
}

// RandSource is a NumberSource backed by math/rand. It is deterministic for a
// given seed.
type RandSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a deterministic source for the given seed
func NewSeededSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// NewSource creates a source seeded from crypto/rand
func NewSource() (*RandSource, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeededSource(seed), nil
}

// IntRange returns a value in [low, high]
func (s *RandSource) IntRange(low, high int) int {
	if high <= low {
		return low
	}
	return low + s.rng.Intn(high-low+1)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// FixedSource always returns the same number. Useful for scripted rounds.
type FixedSource int

// IntRange returns the fixed number regardless of the range
func (f FixedSource) IntRange(low, high int) int {
	return int(f)
}
