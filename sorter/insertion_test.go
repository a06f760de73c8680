package sorter

import (
	"slices"
	"testing"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/amp-labs/amp-sort/tests"
	"github.com/stretchr/testify/assert"
)

func TestInsertion(t *testing.T) {
	t.Parallel()

	ints := compare.Ordered[int]()

	testCases := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "unsorted", input: []int{3, 5, 1, 4, 2}, expected: []int{1, 2, 3, 4, 5}},
		{name: "empty", input: []int{}, expected: []int{}},
		{name: "nil", input: nil, expected: nil},
		{name: "single", input: []int{6}, expected: []int{6}},
		{name: "reversed", input: []int{5, 4, 3, 2, 1}, expected: []int{1, 2, 3, 4, 5}},
		{name: "duplicates", input: []int{2, 1, 2, 1, 0}, expected: []int{0, 1, 1, 2, 2}},
		{name: "negatives", input: []int{0, -3, 7, -1}, expected: []int{-3, -1, 0, 7}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			values := slices.Clone(tc.input)
			Insertion(values, ints)
			assert.Equal(t, tc.expected, values)
		})
	}
}

func TestInsertion_Stable(t *testing.T) {
	t.Parallel()

	values := tests.Tag(tests.RandomInts(7, 300, 10))
	Insertion(values, tests.ByKey)

	tests.AssertSorted(t, values, tests.ByKey)
	tests.AssertStable(t, values)
}

func TestInsertion_LinearOnSortedInput(t *testing.T) {
	t.Parallel()

	values := make([]int, 1000)
	for i := range values {
		values[i] = i
	}

	counter := compare.NewCounter(compare.Ordered[int]())
	Insertion(values, counter.Compare)

	assert.Equal(t, int64(len(values)-1), counter.Calls())
	assert.True(t, slices.IsSorted(values))
}

func TestInsertion_Sortable(t *testing.T) {
	t.Parallel()

	values := []sortable.String{"lop", "aab", "bbf", "aaa"}
	Insertion(values, sortable.Compare[sortable.String])

	assert.Equal(t, []sortable.String{"aaa", "aab", "bbf", "lop"}, values)
}
