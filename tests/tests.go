// Package tests provides helpers shared by the test suites of the sorting
// packages: a per-test context carrying a unique identifier, env-gated
// skipping for slow tests, random input generators, and property assertions
// for sortedness, permutation preservation, and stability.
//
// Example usage:
//
//	func TestHeap(t *testing.T) {
//	    ctx := tests.GetUniqueContext(t)
//	    input := tests.RandomInts(42, 1000, 100)
//	    ...
//	    tests.AssertSorted(t, output, compare.Ordered[int]())
//	}
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-sort/envutil"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/google/uuid"
)

type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// GetUniqueContext creates a context derived from t.Context() that carries a
// unique test identifier ("test-" followed by a UUID) and the test name.
// Both are also attached as logger values, so anything logged through
// logger.Get(ctx) can be traced back to the test that produced it.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := context.WithValue(t.Context(), testIdKey, id)
	ctx = context.WithValue(ctx, testNameKey, t.Name())

	return logger.With(ctx, "test_id", id, "test_name", t.Name())
}

// Info is the test metadata stored by GetUniqueContext.
type Info struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// GetTestInfo retrieves the test ID and name from the context. The boolean
// is false if the context was not created by GetUniqueContext.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, idOk := ctx.Value(testIdKey).(string)
	name, nameOk := ctx.Value(testNameKey).(string)

	if !idOk && !nameOk {
		return Info{}, false
	}

	return Info{Id: id, Name: name}, true
}

// CheckSkipped skips the test when the boolean environment variable envKey
// is true. defaultValue is used when the variable is unset.
//
// Example:
//
//	tests.CheckSkipped(ctx, t, "SKIP_LARGE_SORT_TESTS", false)
func CheckSkipped(ctx context.Context, t *testing.T, envKey string, defaultValue bool) {
	t.Helper()

	if envutil.Bool(ctx, envKey, envutil.Default(defaultValue)).ValueOrElse(defaultValue) {
		t.Skipf("Skipping test because of environment variable: %s", envKey)
	}
}
