// Package subarray finds the maximum sum over contiguous subarrays.
//
// Two algorithms are provided:
//   - BruteForce examines every (start, end) pair in O(n²) time and is kept
//     as a reference oracle.
//   - Kadane makes a single pass in O(n) time. It is seeded with the first
//     element rather than zero, so an all-negative sequence yields its
//     largest element instead of 0.
//
// A well-known textbook formulation of Kadane's algorithm assumes the empty
// subarray is allowed and starts the running maximum at zero. That version
// reports 0 for [-2, -1, -3]; it is deliberately not offered here.
//
// Sums are computed in the element type and may overflow for extreme inputs,
// exactly like the equivalent hand-written loop.
package subarray
