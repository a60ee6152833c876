package govec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/govec/internal/bounds"
)

var (
	// ErrEmptyAccess is matched by every AccessError raised on an empty vector.
	ErrEmptyAccess = errors.New("access on empty vector")

	// ErrOutOfBounds is matched by every AccessError whose index falls outside
	// a non-empty vector.
	ErrOutOfBounds = errors.New("index out of bounds")
)

// AccessKind classifies an AccessError.
type AccessKind int

const (
	// EmptyAccess means the vector had no elements.
	EmptyAccess AccessKind = iota
	// OutOfBounds means the normalized index was outside [0, Len()).
	OutOfBounds
)

func (k AccessKind) String() string {
	switch k {
	case EmptyAccess:
		return "EmptyAccess"
	case OutOfBounds:
		return "OutOfBounds"
	default:
		return fmt.Sprintf("AccessKind(%d)", int(k))
	}
}

// AccessError indicates an index that does not address a live element.
//
// Use errors.Is with ErrEmptyAccess or ErrOutOfBounds to test the kind.
// The original underlying error (if any) can be accessed via errors.Unwrap.
type AccessError struct {
	Kind AccessKind
	// Index is the index as passed by the caller, before normalization.
	Index int
	// Length is the vector length at the time of the access.
	Length int
	cause  error
}

func (e *AccessError) Error() string {
	if e.Kind == EmptyAccess {
		return fmt.Sprintf("tried to access vector(%d) at index %d but it is empty", e.Length, e.Index)
	}
	lo, hi, _ := e.Range()
	return fmt.Sprintf("tried to access vector(%d) at index %d but only [%d, %d] is allowed", e.Length, e.Index, lo, hi)
}

// Range returns the inclusive range of valid indices. Both positive and
// negative indices are accepted, so the range is [-(Length-1), Length-1].
// ok is false for an empty vector.
func (e *AccessError) Range() (lo, hi int, ok bool) {
	if e.Length == 0 {
		return 0, 0, false
	}
	return -(e.Length - 1), e.Length - 1, true
}

// Is reports whether target is the sentinel for e's kind.
func (e *AccessError) Is(target error) bool {
	switch target {
	case ErrEmptyAccess:
		return e.Kind == EmptyAccess
	case ErrOutOfBounds:
		return e.Kind == OutOfBounds
	}
	return false
}

func (e *AccessError) Unwrap() error { return e.cause }

func newAccessError(index, length int) *AccessError {
	kind := OutOfBounds
	if length == 0 {
		kind = EmptyAccess
	}
	return &AccessError{Kind: kind, Index: index, Length: length}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var be *bounds.Error
	if errors.As(err, &be) {
		ae := newAccessError(be.Index, be.Length)
		ae.cause = err
		return ae
	}

	return err
}
