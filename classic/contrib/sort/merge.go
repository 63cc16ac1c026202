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

// Merge sorts data in place using a stable top-down merge sort.
func Merge[T classic.Signed](data []T) {
	MergeBy(data, identity[T])
}

// MergeBy sorts data in place by key using a stable top-down merge sort.
// It allocates one scratch buffer of len(data) elements.
func MergeBy[E any, K classic.Signed](data []E, key func(E) K) {
	if len(data) <= 1 {
		return
	}
	buf := make([]E, len(data))
	mergeSort(data, buf, key)
}

// Inversions returns the number of pairs i < j with data[i] > data[j].
// data is not modified.
func Inversions[T classic.Signed](data []T) int {
	if len(data) <= 1 {
		return 0
	}
	work := append([]T(nil), data...)
	buf := make([]T, len(work))
	return mergeSort(work, buf, identity[T])
}

// mergeSort sorts data using buf (same length) as scratch space and returns
// the number of inversions it removed.
func mergeSort[E any, K classic.Signed](data, buf []E, key func(E) K) int {
	if len(data) <= 1 {
		return 0
	}
	mid := len(data) / 2
	inversions := mergeSort(data[:mid], buf[:mid], key)
	inversions += mergeSort(data[mid:], buf[mid:], key)
	return inversions + merge(data, mid, buf, key)
}

// merge merges the sorted runs data[:mid] and data[mid:] back into data.
// On equal keys the left run wins, which keeps the sort stable.
func merge[E any, K classic.Signed](data []E, mid int, buf []E, key func(E) K) int {
	copy(buf, data)
	left, right := buf[:mid], buf[mid:len(data)]

	inversions := 0
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if key(left[i]) <= key(right[j]) {
			data[k] = left[i]
			i++
		} else {
			// right[j] jumps over every element still waiting in left.
			data[k] = right[j]
			inversions += len(left) - i
			j++
		}
		k++
	}
	k += copy(data[k:], left[i:])
	copy(data[k:], right[j:])
	return inversions
}
