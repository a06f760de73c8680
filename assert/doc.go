// Package assert provides panicking checks for internal invariants, such as
// heap bookkeeping and scratch buffer sizing inside the sorting algorithms.
//
// These are never used to validate caller input; precondition violations are
// reported as errors wrapping errors.ErrInvalidInput instead. Build with the
// assertions_disabled tag to compile the checks away.
package assert
