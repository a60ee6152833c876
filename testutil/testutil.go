package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values in [0, maxVal).
// A small maxVal produces many duplicates, which is what partition and
// removal tests want.
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	xs := make([]int, n)
	for i := range xs {
		xs[i] = r.rand.Intn(maxVal)
	}
	return xs
}

// Strings returns n pseudo-random lowercase strings of length 1..maxLen.
func (r *RNG) Strings(n, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	xs := make([]string, n)
	for i := range xs {
		b := make([]byte, 1+r.rand.Intn(maxLen))
		for j := range b {
			b[j] = byte('a' + r.rand.Intn(26))
		}
		xs[i] = string(b)
	}
	return xs
}

// Ascending returns 0, 1, ..., n-1.
func Ascending(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return xs
}

// Descending returns n-1, n-2, ..., 0.
func Descending(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = n - 1 - i
	}
	return xs
}

// IsSortedFunc reports whether xs is non-decreasing according to cmp.
func IsSortedFunc[T any](xs []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(xs); i++ {
		if cmp(xs[i-1], xs[i]) > 0 {
			return false
		}
	}
	return true
}

// Counts returns how often each value occurs in xs.
func Counts[T comparable](xs []T) map[T]int {
	m := make(map[T]int, len(xs))
	for _, x := range xs {
		m[x]++
	}
	return m
}
