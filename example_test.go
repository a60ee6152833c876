package govec_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/govec"
)

// Example_chaining demonstrates chained appends and negative indices.
func Example_chaining() {
	v := govec.New[int]()
	v.Append(10).Append(20).Append(30)

	first, _ := v.First()
	last, _ := v.Get(-1)
	fmt.Println(v.Len(), first, last)
	// Output: 3 10 30
}

// Example_accessError demonstrates inspecting a rejected access.
func Example_accessError() {
	v := govec.From(1, 2, 3)

	_, err := v.Get(3)
	var ae *govec.AccessError
	if errors.As(err, &ae) {
		lo, hi, _ := ae.Range()
		fmt.Println(ae.Kind, lo, hi)
	}
	fmt.Println(errors.Is(err, govec.ErrOutOfBounds))
	// Output:
	// OutOfBounds -2 2
	// true
}

// Example_sort demonstrates default and custom ordering.
func Example_sort() {
	v := govec.From(1, 22, 4, 15, 69, 7, 88, 90, 0, 7)

	govec.Sort(v)
	fmt.Println(v)

	v.SortFunc(govec.Descending(govec.DefaultCompare[int]))
	fmt.Println(v)
	// Output:
	// {0, 1, 4, 7, 7, 15, 22, 69, 88, 90}
	// {90, 88, 69, 22, 15, 7, 7, 4, 1, 0}
}

// Example_slice demonstrates that slices own their storage.
func Example_slice() {
	v := govec.From("a", "b", "c", "d", "e")

	s, err := v.Slice(-3, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = s.Set(0, "x")

	fmt.Println(s, v)
	// Output: {x, d} {a, b, c, d, e}
}

// Example_remove demonstrates removal by value and by position.
func Example_remove() {
	v := govec.From(20, 10, 10, 20, 50)

	fmt.Println(v.Remove(10), v)

	x, _ := v.RemoveAt(-1)
	fmt.Println(x, v)
	// Output:
	// 2 {20, 20, 50}
	// 50 {20, 20}
}
