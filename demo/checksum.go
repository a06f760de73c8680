package demo

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// checksum is an order-independent fingerprint of a multiset: the wrapping
// sum of the xxh3 hash of each element's printed form. Two slices holding the
// same elements with the same multiplicities always produce the same value.
func checksum[T any](values []T) uint64 {
	var sum uint64

	for _, v := range values {
		sum += xxh3.HashString(fmt.Sprint(v))
	}

	return sum
}
