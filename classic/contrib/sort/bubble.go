// Copyright 2026 go-classics Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "github.com/ajroetker/go-classics/classic"

// Bubble sorts data in place and returns the number of swaps performed,
// which equals the number of inversions in the input.
func Bubble[T classic.Signed](data []T) int {
	return BubbleBy(data, identity[T])
}

// BubbleBy sorts data in place by key using bubble sort.
//
// Each pass swaps adjacent out-of-order elements, which carries the largest
// remaining element to the end, so every pass is one element shorter than
// the last. A pass without swaps means the slice is sorted and ends the
// sort. Only strictly greater keys are swapped, so the sort is stable.
func BubbleBy[E any, K classic.Signed](data []E, key func(E) K) int {
	swaps := 0
	for n := len(data); n > 1; n-- {
		swapped := false
		for j := 0; j < n-1; j++ {
			if key(data[j]) > key(data[j+1]) {
				data[j], data[j+1] = data[j+1], data[j]
				swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return swaps
}
