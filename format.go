package govec

import (
	"fmt"
	"strings"
)

// String returns the elements formatted as {a, b, c}.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range v.live() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Inspect returns a debugging representation including identity and size.
func (v *Vector[T]) Inspect() string {
	return fmt.Sprintf("<govec.Vector#%p size:%d cap:%d values:%s>", v, v.Len(), v.Cap(), v.String())
}
