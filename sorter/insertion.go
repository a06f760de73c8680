package sorter

import "github.com/amp-labs/amp-sort/compare"

// Insertion sorts s in place into non-decreasing order. Each element is
// shifted left past every predecessor that orders strictly after it, so
// equal elements keep their relative order.
func Insertion[T any](s []T, c compare.Comparator[T]) {
	for i := 1; i < len(s); i++ {
		held := s[i]

		j := i
		for ; j > 0 && c(held, s[j-1]) < 0; j-- {
			s[j] = s[j-1]
		}

		s[j] = held
	}
}
