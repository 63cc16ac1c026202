// Package sort provides four classic sorting algorithms over slices of
// signed integers.
//
// # Algorithms
//
//   - Bubble: adjacent swaps with early exit. O(n²), O(n) on sorted input.
//     In-place and stable.
//   - Merge: top-down merge sort. O(n log n) always, O(n) scratch space.
//     Stable.
//   - Quick: Lomuto-partition quicksort. O(n log n) on average, O(n²) worst
//     case. In-place, not stable.
//   - Counting: frequency counting over an ordered map of distinct values.
//     O(n log k) for k distinct values, no comparisons between elements.
//     Stable; returns a new slice.
//
// Every algorithm also has a By form that sorts arbitrary elements by an
// integer key, e.g. records by their id. Stability is only observable there.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-classics/classic/contrib/sort"
//
//	func Process(data []int64) {
//	    sort.Merge(data)                       // in-place, stable
//	    sort.Sort(sort.AlgorithmQuick, data)   // dispatch by Algorithm
//	    out := sort.Counting(data)             // new slice
//	    _ = out
//	}
package sort
