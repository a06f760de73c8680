// Package zero provides utilities for working with zero values of generic types.
package zero

// Value returns the zero value for type T.
// Containers use it to clear vacated slots so they stop referencing removed elements.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
