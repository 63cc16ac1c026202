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

import (
	"math/rand/v2"

	"github.com/ajroetker/go-classics/classic"
)

// Pivot selects the pivot element of each quicksort partition.
type Pivot int

const (
	// PivotLast uses the last element of the range. Already sorted and
	// reverse sorted input degrade to O(n²) comparisons.
	PivotLast Pivot = iota

	// PivotMedianOf3 uses the median of the first, middle and last elements.
	PivotMedianOf3

	// PivotRandom uses a uniformly random element.
	PivotRandom
)

// String returns the pivot rule name.
func (p Pivot) String() string {
	switch p {
	case PivotLast:
		return "last"
	case PivotMedianOf3:
		return "median-of-3"
	case PivotRandom:
		return "random"
	default:
		return "unknown"
	}
}

// index returns the position of the pivot chosen by p within a range of n
// elements whose keys are read through keyAt. n must be at least 2.
func (p Pivot) index(n int, keyAt func(i int) int64) int {
	last := n - 1
	switch p {
	case PivotMedianOf3:
		return medianOf3(0, n/2, last, keyAt)
	case PivotRandom:
		return rand.IntN(n)
	default:
		return last
	}
}

// medianOf3 returns whichever of positions a, b, c holds the median key.
func medianOf3(a, b, c int, keyAt func(i int) int64) int {
	ka, kb, kc := keyAt(a), keyAt(b), keyAt(c)
	if ka > kb {
		a, b = b, a
		ka, kb = kb, ka
	}
	if kb > kc {
		b, kb = c, kc
		if ka > kb {
			b = a
		}
	}
	return b
}

// Quick sorts data in place using quicksort with the last element as pivot.
func Quick[T classic.Signed](data []T) {
	QuickBy(data, identity[T], PivotLast)
}

// QuickWith sorts data in place using quicksort with the given pivot rule.
func QuickWith[T classic.Signed](data []T, pivot Pivot) {
	QuickBy(data, identity[T], pivot)
}

// QuickBy sorts data in place by key using quicksort with Lomuto
// partitioning. It is not stable.
//
// After partitioning, the call recurses into the smaller side and loops on
// the larger one, so the stack depth stays O(log n) even when a poor pivot
// makes the running time quadratic.
func QuickBy[E any, K classic.Signed](data []E, key func(E) K, pivot Pivot) {
	for len(data) > 1 {
		p := partition(data, key, pivot)
		left, right := data[:p], data[p+1:]
		if len(left) < len(right) {
			QuickBy(left, key, pivot)
			data = right
		} else {
			QuickBy(right, key, pivot)
			data = left
		}
	}
}

// partition moves the chosen pivot to the end of data, gathers every element
// with key <= pivot into a prefix, then swaps the pivot in behind that
// prefix. It returns the pivot's final index: everything before it is <= the
// pivot and everything after it is > the pivot.
func partition[E any, K classic.Signed](data []E, key func(E) K, pivot Pivot) int {
	last := len(data) - 1
	if p := pivot.index(len(data), func(i int) int64 { return int64(key(data[i])) }); p != last {
		data[p], data[last] = data[last], data[p]
	}

	pv := key(data[last])
	boundary := 0
	for j := 0; j < last; j++ {
		if key(data[j]) <= pv {
			data[boundary], data[j] = data[j], data[boundary]
			boundary++
		}
	}
	data[boundary], data[last] = data[last], data[boundary]
	return boundary
}
