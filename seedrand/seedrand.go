package seedrand

import (
	"errors"
	"math/rand"
)

// ErrEmptyPick is returned when picking from an empty slice.
var ErrEmptyPick = errors.New("seedrand: cannot pick from empty slice")

// Source is a seeded pseudo-random generator with a reproducible sequence.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New creates a Source seeded with seed. Equal seeds yield equal sequences.
// Complexity: O(1).
func New(seed int64) *Source {
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed this Source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Reset rewinds the Source to its initial seed state, so the next draw
// repeats the first draw of a fresh Source.
func (s *Source) Reset() {
	s.rng = rand.New(rand.NewSource(s.seed))
}

// Float64 returns the next float in [0.0, 1.0).
func (s *Source) Float64() float64 { return s.rng.Float64() }

// Uniform returns the next float in [a, b).
func (s *Source) Uniform(a, b float64) float64 {
	return a + (b-a)*s.rng.Float64()
}

// IntN returns the next int in [0, n). Panics if n <= 0, matching math/rand.
func (s *Source) IntN(n int) int { return s.rng.Intn(n) }

// Pick returns a uniformly chosen element of seq, or ErrEmptyPick when seq
// is empty.
func Pick[T any](s *Source, seq []T) (T, error) {
	var zero T
	if len(seq) == 0 {
		return zero, ErrEmptyPick
	}
	return seq[s.rng.Intn(len(seq))], nil
}

// Shuffle permutes seq in place.
func Shuffle[T any](s *Source, seq []T) {
	s.rng.Shuffle(len(seq), func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
}
