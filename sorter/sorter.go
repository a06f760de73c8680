package sorter

import (
	"log/slog"
	"time"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/logger"
)

// Option configures a Sorter or RadixSorter.
type Option func(*options)

type options struct {
	log     *slog.Logger
	metrics bool
}

// WithLogger sets the logger that receives per-call debug records and
// warnings about rejected input. Without it, logger.Get() is consulted on
// every call so later changes to the default logger are picked up.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithoutMetrics disables Prometheus instrumentation.
func WithoutMetrics() Option {
	return func(o *options) {
		o.metrics = false
	}
}

func newOptions(opts []Option) options {
	o := options{metrics: true}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// run times fn, reports the call, and returns fn's error annotated with the
// algorithm and input size.
func (o options) run(algorithm string, size int, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	if o.metrics {
		observe(algorithm, size, elapsed, err)
	}

	log := o.log
	if log == nil {
		log = logger.Get()
	}

	if err != nil {
		err = logger.AnnotateError(err, "algorithm", algorithm, "size", size)
		log.Warn("rejected sort input", "error", err)

		return err
	}

	log.Debug("sorted", "algorithm", algorithm, "size", size, "duration", elapsed)

	return nil
}

// Sorter binds a comparator to the comparison-based algorithms of this
// package and instruments every call. A Sorter holds no per-call state and
// may be reused, but concurrent calls must not share a slice.
type Sorter[T any] struct {
	compare compare.Comparator[T]
	options
}

// New returns a Sorter ordering elements with c.
func New[T any](c compare.Comparator[T], opts ...Option) *Sorter[T] {
	return &Sorter[T]{
		compare: c,
		options: newOptions(opts),
	}
}

// Comparator returns the ordering this Sorter was built with.
func (s *Sorter[T]) Comparator() compare.Comparator[T] {
	return s.compare
}

// InsertionSort sorts values in place. See Insertion.
func (s *Sorter[T]) InsertionSort(values []T) {
	_ = s.run(AlgorithmInsertion, len(values), func() error {
		Insertion(values, s.compare)

		return nil
	})
}

// MergeSort returns a sorted copy of values. See Merge.
func (s *Sorter[T]) MergeSort(values []T) []T {
	var out []T

	_ = s.run(AlgorithmMerge, len(values), func() error {
		out = Merge(values, s.compare)

		return nil
	})

	return out
}

// MergeSortInPlace sorts values in place. See MergeInPlace.
func (s *Sorter[T]) MergeSortInPlace(values []T) {
	_ = s.run(AlgorithmMergeInPlace, len(values), func() error {
		MergeInPlace(values, s.compare)

		return nil
	})
}

// HeapSort sorts values in place. See Heap.
func (s *Sorter[T]) HeapSort(values []T) {
	_ = s.run(AlgorithmHeap, len(values), func() error {
		Heap(values, s.compare)

		return nil
	})
}

// TopK returns the k largest elements of values in ascending order,
// overwriting values with the result. See TopK.
func (s *Sorter[T]) TopK(k int, values []T) ([]T, error) {
	var out []T

	err := s.run(AlgorithmTopK, len(values), func() error {
		var err error

		out, err = TopK(k, values, s.compare)

		return err
	})

	return out, err
}

// RadixSorter is the instrumented counterpart of LSDRadix. Radix sort orders
// by byte value rather than through a comparator, so it has no type parameter.
type RadixSorter struct {
	options
}

// NewRadix returns a RadixSorter.
func NewRadix(opts ...Option) *RadixSorter {
	return &RadixSorter{options: newOptions(opts)}
}

// LSDRadixSort sorts strs, each exactly w bytes long, in place. See LSDRadix.
func (r *RadixSorter) LSDRadixSort(strs []string, w int) error {
	return r.run(AlgorithmLSDRadix, len(strs), func() error {
		return LSDRadix(strs, w)
	})
}
