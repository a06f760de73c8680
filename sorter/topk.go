package sorter

import (
	"fmt"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/pqueue"
)

// TopK selects the k largest elements of s and returns them in ascending
// order. The result is written over the front of s and the returned slice is
// s[:min(k, len(s))]; the remaining elements of s are set to the zero value,
// so s is effectively replaced by the result.
//
// A bounded min-heap of size k holds the best candidates seen so far; an
// element displaces the current minimum only if it orders strictly after it.
// This takes O(n log k) time and O(k) extra space.
//
// k == 0 yields an empty result. A negative k returns an error wrapping
// errors.ErrInvalidInput and leaves s untouched.
func TopK[T any](k int, s []T, c compare.Comparator[T]) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative k %d", errors.ErrInvalidInput, k)
	}

	m := min(k, len(s))
	if m == 0 {
		clear(s)

		return s[:0], nil
	}

	q := pqueue.New(c, m)

	for _, v := range s {
		if !q.Full() {
			_ = q.Push(v)

			continue
		}

		if lowest, _ := q.Peek(); c(v, lowest) > 0 {
			q.Replace(v)
		}
	}

	out := q.Drain(s[:0])
	clear(s[len(out):])

	return out, nil
}
