package demo

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/sorter"
	"github.com/amp-labs/amp-sort/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Defaults(t *testing.T) {
	t.Parallel()

	ctx := tests.GetUniqueContext(t)

	var out bytes.Buffer

	require.NoError(t, Run(ctx, &out, Defaults()))

	assert.Equal(t, "insertion: [1 2 3 4 5]\n"+
		"lsd-radix: [aaa aab abc bbd bbf lop]\n"+
		"merge-singleton: [6]\n"+
		"merge-in-place: [1 2 3 4 5]\n"+
		"heap: [1 2 3 4 5]\n"+
		"top-k: [5 6 7 8]\n", out.String())
}

func TestRun_ReportsFailuresAndContinues(t *testing.T) {
	t.Parallel()

	ctx := tests.GetUniqueContext(t)

	info, ok := tests.GetTestInfo(ctx)
	require.True(t, ok)
	assert.Equal(t, t.Name(), info.Name)

	scenarios := []Scenario{
		{Name: "bad-width", Algorithm: sorter.AlgorithmLSDRadix, Strings: []string{"ab", "abc"}, Width: 2},
		{Name: "negative-k", Algorithm: sorter.AlgorithmTopK, Ints: []int{1, 2}, K: -1},
		{Name: "unknown", Algorithm: "bogo"},
		{Name: "strings-heap", Algorithm: sorter.AlgorithmHeap, Strings: []string{"pear", "fig"}},
	}

	var out bytes.Buffer

	err := Run(ctx, &out, scenarios)
	require.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"bad-width"`)
	assert.Contains(t, err.Error(), `"negative-k"`)
	assert.Contains(t, err.Error(), `unknown algorithm "bogo"`)
	assert.Equal(t, "strings-heap: [fig pear]\n", out.String())
}

func TestScenario_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		scenario Scenario
		valid    bool
	}{
		{name: "valid", scenario: Scenario{Name: "a", Algorithm: sorter.AlgorithmHeap, Ints: []int{1}}, valid: true},
		{name: "missing name", scenario: Scenario{Algorithm: sorter.AlgorithmHeap}},
		{
			name:     "both inputs",
			scenario: Scenario{Name: "a", Algorithm: sorter.AlgorithmHeap, Ints: []int{1}, Strings: []string{"a"}},
		},
		{name: "radix over ints", scenario: Scenario{Name: "a", Algorithm: sorter.AlgorithmLSDRadix, Ints: []int{1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.scenario.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errors.ErrInvalidInput)
			}
		})
	}
}

func TestLoadScenarios(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
- name: words
  algorithm: lsd_radix
  width: 2
  strings: [zz, ab, aa]
- name: largest
  algorithm: top_k
  k: 2
  ints: [4, 9, 1, 7]
`), 0o600))

	scenarios, err := LoadScenarios(good)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, Scenario{Name: "words", Algorithm: sorter.AlgorithmLSDRadix, Width: 2, Strings: []string{"zz", "ab", "aa"}},
		scenarios[0])
	assert.Equal(t, 2, scenarios[1].K)

	var out bytes.Buffer

	require.NoError(t, Run(tests.GetUniqueContext(t), &out, scenarios))
	assert.Equal(t, "words: [aa ab zz]\nlargest: [7 9]\n", out.String())

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- name: x\n  algorithm: shell\n"), 0o600))

	_, err = LoadScenarios(bad)
	require.ErrorIs(t, err, errors.ErrInvalidInput)

	malformed := filepath.Join(dir, "malformed.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("name: [unterminated"), 0o600))

	_, err = LoadScenarios(malformed)
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	order := func(a, b int) int { return a - b }

	require.NoError(t, verify([]int{3, 1, 2}, []int{1, 2, 3}, order, true))
	require.ErrorIs(t, verify([]int{3, 1, 2}, []int{1, 3, 2}, order, true), ErrVerification)
	require.ErrorIs(t, verify([]int{3, 1, 2}, []int{1, 2, 2}, order, true), ErrVerification)
	require.NoError(t, verify([]int{3, 1, 2}, []int{2, 3}, order, false))
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, checksum([]string{"a", "b", "b"}), checksum([]string{"b", "a", "b"}))
	assert.NotEqual(t, checksum([]string{"a", "b", "b"}), checksum([]string{"a", "a", "b"}))
	assert.Zero(t, checksum[int](nil))
}
