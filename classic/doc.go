// Package classic holds the shared vocabulary of the go-classics algorithm
// packages: the element constraint, ordering and permutation predicates used
// by tests and the verification harness, and the sentinel errors that the
// contrib packages wrap.
//
// The algorithms themselves live in leaf packages under classic/contrib:
//
//   - classic/contrib/subarray: maximum contiguous subarray sum
//   - classic/contrib/search: binary search variants and insertion points
//   - classic/contrib/sort: bubble, merge, quick and counting sort
//
// None of the leaf packages depend on each other. Every operation is
// synchronous, performs no I/O, and works only on the slice it is given.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-classics/classic"
//	    "github.com/ajroetker/go-classics/classic/contrib/sort"
//	)
//
//	func Process(data []int64) {
//	    sort.Merge(data)
//	    if !classic.IsSorted(data) {
//	        panic("unreachable")
//	    }
//	}
package classic
