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

package subarray

import (
	"fmt"

	"github.com/ajroetker/go-classics/classic"
)

// ErrEmpty is returned by the linear algorithms when the sequence has no
// elements: a maximum over zero subarrays is undefined.
var ErrEmpty = fmt.Errorf("subarray: empty sequence: %w", classic.ErrInvalidArgument)

// Range is a maximum subarray: data[Start:End] sums to Sum.
type Range[T classic.Signed] struct {
	Sum   T
	Start int
	End   int
}

// Len returns the number of elements in the subarray.
func (r Range[T]) Len() int {
	return r.End - r.Start
}

// BruteForce returns the maximum subarray sum by trying every start index
// and extending a running sum to every end index.
//
// An empty sequence returns classic.MinValue[T](), the identity for max.
func BruteForce[T classic.Signed](data []T) T {
	best := classic.MinValue[T]()
	for i := range data {
		var sum T
		for j := i; j < len(data); j++ {
			sum += data[j]
			best = max(best, sum)
		}
	}
	return best
}

// Kadane returns the maximum subarray sum in a single pass.
// It returns ErrEmpty for an empty sequence.
func Kadane[T classic.Signed](data []T) (T, error) {
	if len(data) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	endingHere := data[0]
	best := data[0]
	for _, v := range data[1:] {
		endingHere = max(v, endingHere+v)
		best = max(best, endingHere)
	}
	return best, nil
}

// KadaneRange is Kadane that also reports where the maximum subarray lies.
// A running subarray is extended while its sum is non-negative; among equal
// maxima the one ending first is returned.
func KadaneRange[T classic.Signed](data []T) (Range[T], error) {
	if len(data) == 0 {
		return Range[T]{}, ErrEmpty
	}

	best := Range[T]{Sum: data[0], Start: 0, End: 1}
	endingHere := data[0]
	start := 0
	for i := 1; i < len(data); i++ {
		v := data[i]
		if endingHere < 0 {
			endingHere = v
			start = i
		} else {
			endingHere += v
		}
		if endingHere > best.Sum {
			best = Range[T]{Sum: endingHere, Start: start, End: i + 1}
		}
	}
	return best, nil
}
