// Package bounds translates logical, possibly negative indices into
// canonical offsets.
package bounds

import "fmt"

// Error is returned by Resolve when an index does not address a live element.
type Error struct {
	// Index is the index as requested by the caller.
	Index int
	// Length is the number of live elements at the time of the access.
	Length int
}

func (e *Error) Error() string {
	if e.Empty() {
		return fmt.Sprintf("index %d: container is empty", e.Index)
	}
	return fmt.Sprintf("index %d out of range [%d, %d]", e.Index, -(e.Length - 1), e.Length-1)
}

// Empty reports whether the access failed because there were no elements.
func (e *Error) Empty() bool { return e.Length == 0 }

// Resolve returns the canonical offset for index in a sequence of the given
// length. Negative indices count from the end: -1 is the last element and
// -length the first.
func Resolve(index, length int) (int, error) {
	canonical := index
	if canonical < 0 {
		canonical = length + canonical
	}
	if canonical < 0 || canonical >= length {
		return 0, &Error{Index: index, Length: length}
	}
	return canonical, nil
}
