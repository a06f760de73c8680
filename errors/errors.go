// Package errors defines the sentinel errors shared by the sorting packages
// and a small accumulator for reporting several precondition violations at once.
package errors

import "errors"

var (
	// ErrInvalidInput marks a precondition violation by the caller, such as a
	// radix sort input whose strings are not all the declared width, or a
	// negative k passed to a top-k selection.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCapacityExceeded is returned when pushing into a bounded priority
	// queue that is already full.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Validation code uses it to report every offending element instead of
// stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is exactly one, and an errors.Join of all of
// them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
