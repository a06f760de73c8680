package compare

import (
	"cmp"

	"facette.io/natsort"
	"go.uber.org/atomic"
)

// Comparator is a three-way comparison between two elements. It returns a
// negative number when a orders before b, zero when they are equivalent and
// a positive number when a orders after b.
//
// A Comparator must describe a total order (antisymmetric and transitive) for
// the duration of any single sort call. Results are undefined otherwise.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural ascending order of any cmp.Ordered type.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator that orders elements opposite to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// By returns a comparator ordering elements by the key extracted from each,
// using c to compare the keys.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age }, compare.Ordered[int]())
func By[T any, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// Then returns a comparator that uses primary and falls back to secondary
// only when primary reports the elements as equivalent.
func Then[T any](primary, secondary Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := primary(a, b); r != 0 {
			return r
		}

		return secondary(a, b)
	}
}

// Natural orders strings the way a human would read them, treating runs of
// digits as numbers, so "file2" orders before "file10".
func Natural(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return 0
	}
}

// Counter wraps a comparator and counts how many times it has been invoked.
// It is mostly useful for checking the complexity of an algorithm.
type Counter[T any] struct {
	compare Comparator[T]
	calls   atomic.Int64
}

// NewCounter returns a Counter delegating to c.
func NewCounter[T any](c Comparator[T]) *Counter[T] {
	return &Counter[T]{compare: c}
}

// Compare invokes the wrapped comparator and records the call.
func (c *Counter[T]) Compare(a, b T) int {
	c.calls.Inc()

	return c.compare(a, b)
}

// Calls returns the number of comparisons performed so far.
func (c *Counter[T]) Calls() int64 {
	return c.calls.Load()
}

// Reset sets the call count back to zero.
func (c *Counter[T]) Reset() {
	c.calls.Store(0)
}
