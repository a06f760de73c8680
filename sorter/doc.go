// Package sorter implements classic ordering algorithms over Go slices under
// a caller-supplied three-way comparator:
//
//   - [Insertion]: stable, in place, O(n²) worst case and O(n) on sorted input.
//   - [LSDRadix]: stable least-significant-digit radix sort for strings of a
//     fixed byte width, O(w·(n+256)), no comparisons.
//   - [Merge] and [MergeInPlace]: stable, O(n log n) guaranteed.
//   - [Heap]: in place via a binary heap, O(n log n), not stable.
//   - [TopK]: the k largest elements in ascending order, O(n log k) time and
//     O(k) extra space.
//
// The package never imposes an order; every algorithm takes a
// [compare.Comparator]. The free functions are the bare algorithms. [Sorter]
// and [RadixSorter] wrap them with debug logging and Prometheus metrics.
//
// Precondition violations (a radix input with strings of the wrong width, a
// negative width, a negative k) are reported as errors wrapping
// [errors.ErrInvalidInput], and the input is left untouched. Comparators that
// are not total orders produce undefined results and are not detected.
//
// None of the functions are safe for concurrent use on the same slice.
package sorter
