// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so they can be ordered without writing a comparator.
//
// # Overview
//
// The Sortable interface extends [github.com/amp-labs/amp-sort/compare.Comparable]
// with a LessThan method. Any Sortable type can be turned into a three-way
// comparator with [Compare] (or [Comparator]) and passed to the algorithms in
// [github.com/amp-labs/amp-sort/sorter]:
//
//	values := []sortable.Int{3, 5, 1, 4, 2}
//	sorter.Insertion(values, sortable.Compare[sortable.Int])
//	// values is now 1, 2, 3, 4, 5
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Job struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (j Job) Equals(other Job) bool {
//	    return j.Priority == other.Priority && j.Name == other.Name
//	}
//
//	func (j Job) LessThan(other Job) bool {
//	    if j.Priority != other.Priority {
//	        return j.Priority < other.Priority
//	    }
//	    return j.Name < other.Name
//	}
//
// LessThan must be a strict weak order. Elements for which neither a.LessThan(b)
// nor b.LessThan(a) holds are treated as equivalent, which is what the stable
// algorithms preserve the input order of.
package sortable
