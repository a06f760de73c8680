package tests

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/stretchr/testify/assert"
)

// Tagged pairs a sort key with the position the element had in the input.
// Sorting tagged values by Key alone and then inspecting Index reveals
// whether an algorithm is stable.
type Tagged struct {
	Key   int
	Index int
}

func (t Tagged) String() string {
	return fmt.Sprintf("%d#%d", t.Key, t.Index)
}

// ByKey orders Tagged values by Key only, leaving ties for the algorithm to resolve.
func ByKey(a, b Tagged) int {
	return a.Key - b.Key
}

// Tag wraps every key with its input position.
func Tag(keys []int) []Tagged {
	out := make([]Tagged, len(keys))
	for i, k := range keys {
		out[i] = Tagged{Key: k, Index: i}
	}

	return out
}

// RandomInts returns n deterministic pseudo-random ints in [0, limit).
// A small limit produces many duplicates, which is what stability checks want.
func RandomInts(seed uint64, n, limit int) []int {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec

	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(limit)
	}

	return out
}

// RandomFixedWidth returns n deterministic strings of exactly width bytes,
// each byte drawn from alphabet.
func RandomFixedWidth(seed uint64, n, width int, alphabet string) []string {
	rng := rand.New(rand.NewPCG(seed, seed^0x85ebca6b)) //nolint:gosec

	out := make([]string, n)
	buf := make([]byte, width)

	for i := range out {
		for j := range buf {
			buf[j] = alphabet[rng.IntN(len(alphabet))]
		}

		out[i] = string(buf)
	}

	return out
}

// AssertSorted checks that every adjacent pair is in non-decreasing order under c.
func AssertSorted[T any](t *testing.T, values []T, c compare.Comparator[T]) bool {
	t.Helper()

	for i := 1; i < len(values); i++ {
		if c(values[i-1], values[i]) > 0 {
			return assert.Fail(t, "slice is not sorted",
				"index %d: %v orders after %v", i-1, values[i-1], values[i])
		}
	}

	return true
}

// AssertPermutation checks that actual holds exactly the elements of expected,
// counting duplicates, in any order.
func AssertPermutation[T comparable](t *testing.T, expected, actual []T) bool {
	t.Helper()

	return assert.ElementsMatch(t, expected, actual)
}

// AssertStable checks that among elements with equal keys the input
// positions are strictly increasing.
func AssertStable(t *testing.T, values []Tagged) bool {
	t.Helper()

	for i := 1; i < len(values); i++ {
		prev, cur := values[i-1], values[i]
		if prev.Key == cur.Key && prev.Index >= cur.Index {
			return assert.Fail(t, "equal elements were reordered",
				"index %d: %v precedes %v", i-1, prev, cur)
		}
	}

	return true
}

// Reference returns a sorted copy of values produced by the standard
// library's stable sort, for comparing against the algorithms under test.
func Reference[T any](values []T, c compare.Comparator[T]) []T {
	out := slices.Clone(values)
	slices.SortStableFunc(out, c)

	return out
}
