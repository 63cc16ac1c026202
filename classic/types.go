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

// Signed is the element constraint for every algorithm in go-classics.
// All sequences are finite slices of signed integers.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Tagged pairs a value with its position in the sequence it was taken from.
// Sorting tagged values by Value exposes whether equal values kept their
// relative order.
type Tagged[T Signed] struct {
	Value T
	Index int
}

// Tag returns data as tagged values, Index being the position in data.
func Tag[T Signed](data []T) []Tagged[T] {
	tagged := make([]Tagged[T], len(data))
	for i, v := range data {
		tagged[i] = Tagged[T]{Value: v, Index: i}
	}
	return tagged
}

// TagValue returns the sort key of a tagged value.
func TagValue[T Signed](t Tagged[T]) T {
	return t.Value
}

// Untag strips the positions from tagged values.
func Untag[T Signed](tagged []Tagged[T]) []T {
	data := make([]T, len(tagged))
	for i, t := range tagged {
		data[i] = t.Value
	}
	return data
}
