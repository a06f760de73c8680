package sortable

import (
	"github.com/amp-labs/amp-sort/compare"
)

// Sortable is implemented by types that know their own ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a compare.Comparator for any Sortable type. It reports a before
// b when a.LessThan(b), b before a when b.LessThan(a), and equivalence otherwise.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Comparator returns Compare typed as a compare.Comparator, ready to be
// handed to the sorter package.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return Compare[T]
}
