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

package classic

import (
	"maps"
	"unsafe"

	"github.com/samber/lo"
)

// MinValue returns the minimum representable value for the type.
func MinValue[T Signed]() T {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	one := T(1)
	return one << (bits - 1)
}

// MaxValue returns the maximum representable value for the type.
func MaxValue[T Signed]() T {
	return ^MinValue[T]()
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T Signed](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsPermutation reports whether a and b hold the same multiset of values.
func IsPermutation[T Signed](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return maps.Equal(lo.CountValues(a), lo.CountValues(b))
}

// IsStable reports whether tagged is sorted by Value and every run of equal
// values keeps ascending Index, i.e. the sort that produced it preserved the
// input order of equal elements.
func IsStable[T Signed](tagged []Tagged[T]) bool {
	for i := 1; i < len(tagged); i++ {
		prev, cur := tagged[i-1], tagged[i]
		if cur.Value < prev.Value {
			return false
		}
		if cur.Value == prev.Value && cur.Index < prev.Index {
			return false
		}
	}
	return true
}
