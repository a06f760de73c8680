// Package pqueue provides a binary min-heap ordered by a caller-supplied
// comparator, optionally bounded to a fixed capacity.
//
// The queue backs both the heap sort and the top-k selection in the sorter
// package. It is not stable: elements that compare equal are popped in an
// unspecified order. A Queue has a single owner and is not safe for
// concurrent use.
package pqueue

import (
	"fmt"

	"github.com/amp-labs/amp-sort/assert"
	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/zero"
)

// Queue is a min-heap: Peek and Pop return the element that orders first
// according to the comparator.
type Queue[T any] struct {
	items    []T
	compare  compare.Comparator[T]
	capacity int
}

// New creates a queue ordered by c. A capacity of zero or less means the
// queue is unbounded; otherwise Push fails once capacity elements are held.
func New[T any](c compare.Comparator[T], capacity int) *Queue[T] {
	q := &Queue[T]{
		compare:  c,
		capacity: max(capacity, 0),
	}

	if q.capacity > 0 {
		q.items = make([]T, 0, q.capacity)
	}

	return q
}

// Len returns the number of elements currently held.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Cap returns the capacity bound, or 0 for an unbounded queue.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Full reports whether a bounded queue has reached its capacity.
// An unbounded queue is never full.
func (q *Queue[T]) Full() bool {
	return q.capacity > 0 && len(q.items) >= q.capacity
}

// Push inserts v, returning errors.ErrCapacityExceeded if the queue is full.
func (q *Queue[T]) Push(v T) error {
	if q.Full() {
		return fmt.Errorf("%w: queue holds %d elements", errors.ErrCapacityExceeded, q.capacity)
	}

	q.items = append(q.items, v)
	q.up(len(q.items) - 1)

	return nil
}

// Peek returns the minimum element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if len(q.items) == 0 {
		return zero.Value[T](), false
	}

	return q.items[0], true
}

// Pop removes and returns the minimum element.
func (q *Queue[T]) Pop() (T, bool) {
	n := len(q.items) - 1
	if n < 0 {
		return zero.Value[T](), false
	}

	top := q.items[0]
	q.items[0] = q.items[n]
	q.items[n] = zero.Value[T]()
	q.items = q.items[:n]

	if n > 0 {
		q.down(0)
	}

	return top, true
}

// Replace removes the minimum element and inserts v in a single sift,
// returning the removed element. It is equivalent to Pop followed by Push
// but never fails on a full queue. Calling Replace on an empty queue panics.
func (q *Queue[T]) Replace(v T) T {
	assert.True(len(q.items) > 0, "pqueue: replace on empty queue")

	top := q.items[0]
	q.items[0] = v
	q.down(0)

	return top
}

// Drain pops every element into dst in ascending order and returns the
// extended slice. The queue is empty afterwards.
func (q *Queue[T]) Drain(dst []T) []T {
	for len(q.items) > 0 {
		v, _ := q.Pop()
		dst = append(dst, v)
	}

	return dst
}

func (q *Queue[T]) less(i, j int) bool {
	return q.compare(q.items[i], q.items[j]) < 0
}

func (q *Queue[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !q.less(j, i) {
			break
		}

		q.items[i], q.items[j] = q.items[j], q.items[i]
		j = i
	}
}

func (q *Queue[T]) down(i int) {
	n := len(q.items)

	for {
		j := 2*i + 1
		if j >= n || j < 0 { // j < 0 after int overflow
			break
		}

		if r := j + 1; r < n && q.less(r, j) {
			j = r
		}

		if !q.less(j, i) {
			break
		}

		q.items[i], q.items[j] = q.items[j], q.items[i]
		i = j
	}
}
