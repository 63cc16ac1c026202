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
	"fmt"

	"github.com/google/btree"

	"github.com/ajroetker/go-classics/classic"
)

// countingDegree is the B-tree degree of the frequency map.
const countingDegree = 16

// MaxDenseRange bounds hi-lo+1 for CountingDense, which allocates one
// counter per value in the range.
const MaxDenseRange = 1 << 24

// bucket is one entry of the frequency map. offset first holds the number
// of occurrences of key, then the end of key's output run.
type bucket[K classic.Signed] struct {
	key    K
	offset int
}

func bucketLess[K classic.Signed](a, b *bucket[K]) bool {
	return a.key < b.key
}

// Counting returns a sorted copy of data using counting sort over an ordered
// map of distinct values. data is not modified.
func Counting[T classic.Signed](data []T) []T {
	return CountingBy(data, identity[T])
}

// CountingBy returns a copy of data stably sorted by key.
//
// Occurrences of each distinct key are counted in a B-tree ordered by key.
// Walking the tree in ascending order turns the counts into the end offset
// of each key's run in the output. data is then scanned from the back and
// each element is placed just before its key's current end offset, so equal
// keys keep their input order.
//
// For n elements with k distinct keys this costs O(n log k) time and O(k)
// space besides the output. Negative keys need no special handling.
func CountingBy[E any, K classic.Signed](data []E, key func(E) K) []E {
	out := make([]E, len(data))
	if len(data) == 0 {
		return out
	}

	freq := btree.NewG[*bucket[K]](countingDegree, bucketLess[K])
	probe := &bucket[K]{}
	for _, e := range data {
		probe.key = key(e)
		if b, ok := freq.Get(probe); ok {
			b.offset++
			continue
		}
		freq.ReplaceOrInsert(&bucket[K]{key: probe.key, offset: 1})
	}

	end := 0
	freq.Ascend(func(b *bucket[K]) bool {
		end += b.offset
		b.offset = end
		return true
	})

	for i := len(data) - 1; i >= 0; i-- {
		probe.key = key(data[i])
		b, _ := freq.Get(probe)
		b.offset--
		out[b.offset] = data[i]
	}
	return out
}

// CountingDense returns a sorted copy of data using a dense counter array
// covering [lo, hi]. It runs in O(n + hi - lo) time.
//
// It returns an error wrapping classic.ErrInvalidArgument if lo > hi, if the
// range holds more than MaxDenseRange values, or if any element lies outside
// the range.
func CountingDense[T classic.Signed](data []T, lo, hi T) ([]T, error) {
	if lo > hi {
		return nil, fmt.Errorf("sort: counting range [%d, %d] is empty: %w", lo, hi, classic.ErrInvalidArgument)
	}
	// Unsigned arithmetic keeps hi-lo exact even for the full int64 range.
	width := uint64(int64(hi)) - uint64(int64(lo))
	if width >= MaxDenseRange {
		return nil, fmt.Errorf("sort: counting range [%d, %d] exceeds %d values: %w", lo, hi, MaxDenseRange, classic.ErrInvalidArgument)
	}

	counts := make([]int, width+1)
	for _, v := range data {
		if v < lo || v > hi {
			return nil, fmt.Errorf("sort: value %d outside counting range [%d, %d]: %w", v, lo, hi, classic.ErrInvalidArgument)
		}
		counts[uint64(int64(v))-uint64(int64(lo))]++
	}

	end := 0
	for i, c := range counts {
		end += c
		counts[i] = end
	}

	out := make([]T, len(data))
	for i := len(data) - 1; i >= 0; i-- {
		slot := uint64(int64(data[i])) - uint64(int64(lo))
		counts[slot]--
		out[counts[slot]] = data[i]
	}
	return out, nil
}
