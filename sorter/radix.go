package sorter

import (
	"fmt"

	"github.com/amp-labs/amp-sort/errors"
)

// radix is the alphabet size: one bucket per byte value.
const radix = 256

// LSDRadix sorts strs in place into ascending byte-wise lexicographic order.
// Every string must be exactly w bytes long.
//
// Character positions are processed from w-1 down to 0 with a stable
// key-indexed counting pass each; after the pass for position d the slice is
// ordered by the suffix starting at d. Stability of every pass is what makes
// the composite order correct, and it also makes the whole sort stable.
//
// If w is negative or any string has a length other than w, an error wrapping
// errors.ErrInvalidInput describing every offending string is returned and
// strs is not modified. A width of zero is a no-op.
func LSDRadix(strs []string, w int) error {
	return lsdRadixBy(strs, w, func(s string) string { return s })
}

// lsdRadixBy sorts items by the fixed-width string key extracted from each.
func lsdRadixBy[E any](items []E, w int, key func(E) string) error {
	if err := validateFixedWidth(items, w, key); err != nil {
		return err
	}

	if w == 0 || len(items) < 2 {
		return nil
	}

	aux := make([]E, len(items))

	for d := w - 1; d >= 0; d-- {
		var count [radix + 1]int

		// frequencies, offset by one so the cumulation yields start positions
		for _, item := range items {
			count[int(key(item)[d])+1]++
		}

		for r := range radix {
			count[r+1] += count[r]
		}

		for _, item := range items {
			c := key(item)[d]
			aux[count[c]] = item
			count[c]++
		}

		copy(items, aux)
	}

	return nil
}

// maxReportedViolations bounds how many bad strings one error lists.
const maxReportedViolations = 10

func validateFixedWidth[E any](items []E, w int, key func(E) string) error {
	if w < 0 {
		return fmt.Errorf("%w: negative width %d", errors.ErrInvalidInput, w)
	}

	var errs errors.Collection

	bad := 0

	for i, item := range items {
		s := key(item)
		if len(s) == w {
			continue
		}

		bad++
		if bad <= maxReportedViolations {
			errs.Add(fmt.Errorf("%w: string at index %d has length %d, want %d",
				errors.ErrInvalidInput, i, len(s), w))
		}
	}

	if bad > maxReportedViolations {
		errs.Add(fmt.Errorf("%w: %d more strings have the wrong length",
			errors.ErrInvalidInput, bad-maxReportedViolations))
	}

	return errs.GetError()
}
