// Package rng provides the uniform random source used by the engine.
package rng

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// Source produces uniform values in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Source interface {
	Float64() float64
}

// IntN returns floor(src.Float64() * n), a uniform choice in [0, n).
func IntN(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(src.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Seeded returns a deterministic generator for the given seed.
// A seed of 0 means a time-based seed is used.
func Seeded(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Non-cryptographic PRNG is intentional for reproducible runs.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Sequence replays fixed values in order, then repeats the last one.
// An empty Sequence always returns 0.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

// Float64 returns the next value in the sequence.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Draws returns how many values have been consumed from the fixed list.
func (s *Sequence) Draws() int {
	return s.next
}
