package demo

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/amp-labs/amp-sort/compare"
	sorterrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sorter"
)

// ErrVerification is returned when a scenario's output is not sorted or has
// lost or gained elements.
var ErrVerification = errors.New("verification failed")

// Run executes every scenario, writing "name: [result]" lines to w.
// Scenarios that fail validation or verification are reported together in
// the returned error; the remaining scenarios still run.
func Run(ctx context.Context, w io.Writer, scenarios []Scenario) error {
	log := logger.Get(logger.WithSubsystem(ctx, "demo"))

	var errs sorterrors.Collection

	for _, sc := range scenarios {
		if err := sc.Validate(); err != nil {
			errs.Add(err)

			continue
		}

		var (
			result string
			err    error
		)

		if sc.Strings != nil {
			result, err = runScenario(sc, sc.Strings, sorter.WithLogger(log))
		} else {
			result, err = runScenario(sc, sc.Ints, sorter.WithLogger(log))
		}

		if err != nil {
			log.Error("scenario failed", "scenario", sc.Name, "error", err)
			errs.Add(err)

			continue
		}

		if _, err := fmt.Fprintf(w, "%s: %s\n", sc.Name, result); err != nil {
			return err
		}
	}

	return errs.GetError()
}

func runScenario[T cmp.Ordered](sc Scenario, input []T, opts ...sorter.Option) (string, error) {
	order := compare.Ordered[T]()
	s := sorter.New(order, opts...)
	values := slices.Clone(input)
	permutation := true

	switch sc.Algorithm {
	case sorter.AlgorithmInsertion:
		s.InsertionSort(values)
	case sorter.AlgorithmMerge:
		values = s.MergeSort(values)
	case sorter.AlgorithmMergeInPlace:
		s.MergeSortInPlace(values)
	case sorter.AlgorithmHeap:
		s.HeapSort(values)
	case sorter.AlgorithmTopK:
		var err error

		permutation = false

		if values, err = s.TopK(sc.K, values); err != nil {
			return "", fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	case sorter.AlgorithmLSDRadix:
		strs, ok := any(values).([]string)
		if !ok {
			return "", fmt.Errorf("%w: scenario %q: %s sorts strings only", sorterrors.ErrInvalidInput, sc.Name, sc.Algorithm)
		}

		if err := sorter.NewRadix(opts...).LSDRadixSort(strs, sc.Width); err != nil {
			return "", fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}

	if err := verify(input, values, order, permutation); err != nil {
		return "", fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	return fmt.Sprint(values), nil
}

func verify[T any](input, output []T, order compare.Comparator[T], permutation bool) error {
	for i := 1; i < len(output); i++ {
		if order(output[i-1], output[i]) > 0 {
			return fmt.Errorf("%w: element %d is out of order", ErrVerification, i)
		}
	}

	if permutation && checksum(input) != checksum(output) {
		return fmt.Errorf("%w: output is not a permutation of the input", ErrVerification)
	}

	return nil
}
