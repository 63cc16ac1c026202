// Package search provides binary search over sorted slices of signed
// integers.
//
// All functions require data to be sorted in non-decreasing order. This is
// not checked: on unsorted input the result is unspecified.
//
// # Variants
//
//   - Halving: classic closed-interval binary search.
//   - Jumping: exponentially decaying jumps from the front of the slice.
//     Same results as Halving for distinct values, but a different probe
//     sequence; with duplicates it lands on the last occurrence.
//   - Recursive: Halving expressed as recursion over [left, right].
//   - InsertionPoint: lower bound, the leftmost index where target could be
//     inserted while keeping data sorted.
//
// A miss is not an error: the search variants return NotFound.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-classics/classic/contrib/search"
//
//	func Contains(sorted []int64, v int64) bool {
//	    return search.Halving(sorted, v) != search.NotFound
//	}
package search
