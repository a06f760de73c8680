package sorter

import (
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/pqueue"
)

// Heap sorts s in place into non-decreasing order by pushing every element
// into a binary min-heap and popping them back out. It needs O(n) extra
// space and is not stable.
func Heap[T any](s []T, c compare.Comparator[T]) {
	if len(s) < 2 {
		return
	}

	q := pqueue.New(c, len(s))

	for _, v := range s {
		// capacity is len(s), so Push cannot fail
		_ = q.Push(v)
	}

	q.Drain(s[:0])
}
