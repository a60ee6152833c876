// Package rowset tracks sets of element positions.
//
// It wraps a 32-bit roaring bitmap; positions are ints at the API boundary
// and must fit in a uint32.
package rowset

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/govec/internal/conv"
)

// Set is an ordered set of positions.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Add adds a position to the set.
func (s *Set) Add(pos int) error {
	p, err := conv.IntToUint32(pos)
	if err != nil {
		return err
	}
	s.rb.Add(p)
	return nil
}

// Contains reports whether pos is in the set.
func (s *Set) Contains(pos int) bool {
	p, err := conv.IntToUint32(pos)
	if err != nil {
		return false
	}
	return s.rb.Contains(p)
}

// Len returns the number of positions in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Min returns the smallest position. It must not be called on an empty set.
func (s *Set) Min() int {
	// Uint32ToInt cannot fail on 64-bit platforms.
	p, _ := conv.Uint32ToInt(s.rb.Minimum())
	return p
}

// ForEach calls fn for every position in ascending order until fn returns false.
func (s *Set) ForEach(fn func(pos int) bool) {
	it := s.rb.Iterator()
	for it.HasNext() {
		p, err := conv.Uint32ToInt(it.Next())
		if err != nil || !fn(p) {
			return
		}
	}
}

// Ints returns the positions in ascending order.
func (s *Set) Ints() []int {
	out := make([]int, 0, s.Len())
	s.ForEach(func(pos int) bool {
		out = append(out, pos)
		return true
	})
	return out
}
