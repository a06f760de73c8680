package sorter

import (
	"slices"

	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/compare"
)

// Merge returns a new slice holding the elements of s in non-decreasing
// order. The sort is stable. s itself is never modified and the result never
// shares its backing array, even for inputs of length zero or one.
func Merge[T any](s []T, c compare.Comparator[T]) []T {
	out := slices.Clone(s)
	if len(out) < 2 {
		return out
	}

	scratch := make([]T, len(out))
	mergeSortRange(out, scratch, c)

	return out
}

// MergeInPlace sorts s in place by overwriting it with the result of Merge.
func MergeInPlace[T any](s []T, c compare.Comparator[T]) {
	copy(s, Merge(s, c))
}

// mergeSortRange sorts s recursively, splitting at len(s)/2 so the left
// half never holds more elements than the right. scratch must be at least
// as long as s and is shared by every level of the recursion.
func mergeSortRange[T any](s, scratch []T, c compare.Comparator[T]) {
	if len(s) < 2 {
		return
	}

	mid := len(s) / 2

	mergeSortRange(s[:mid], scratch, c)
	mergeSortRange(s[mid:], scratch, c)
	merge(s, mid, scratch, c)
}

// merge combines the sorted runs s[:mid] and s[mid:]. Ties take from the
// left run first, which is what keeps the sort stable.
func merge[T any](s []T, mid int, scratch []T, c compare.Comparator[T]) {
	assert.True(len(scratch) >= len(s), "merge: scratch holds %d, need %d", len(scratch), len(s))

	// already in order across the seam
	if c(s[mid-1], s[mid]) <= 0 {
		return
	}

	left := scratch[:mid]
	copy(left, s[:mid])

	i, j, k := 0, mid, 0

	for i < len(left) && j < len(s) {
		if c(left[i], s[j]) <= 0 {
			s[k] = left[i]
			i++
		} else {
			s[k] = s[j]
			j++
		}

		k++
	}

	// Whatever remains of the right run is already in place.
	copy(s[k:], left[i:])
}
