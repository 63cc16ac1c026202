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
	"os"
	"strings"

	"github.com/ajroetker/go-classics/classic"
)

// Algorithm selects one of the sorting algorithms.
type Algorithm int

const (
	// AlgorithmBubble selects BubbleBy.
	AlgorithmBubble Algorithm = iota

	// AlgorithmMerge selects MergeBy.
	AlgorithmMerge

	// AlgorithmQuick selects QuickBy with PivotLast.
	AlgorithmQuick

	// AlgorithmCounting selects CountingBy.
	AlgorithmCounting
)

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBubble, AlgorithmMerge, AlgorithmQuick, AlgorithmCounting}
}

// String returns the algorithm name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBubble:
		return "bubble"
	case AlgorithmMerge:
		return "merge"
	case AlgorithmQuick:
		return "quick"
	case AlgorithmCounting:
		return "counting"
	default:
		return "unknown"
	}
}

// Stable reports whether the algorithm keeps equal elements in input order.
func (a Algorithm) Stable() bool {
	switch a {
	case AlgorithmBubble, AlgorithmMerge, AlgorithmCounting:
		return true
	default:
		return false
	}
}

// ParseAlgorithm returns the Algorithm with the given name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("sort: unknown algorithm %q: %w", name, classic.ErrInvalidArgument)
}

// DefaultAlgorithmEnv names the environment variable read by DefaultAlgorithm.
const DefaultAlgorithmEnv = "CLASSICS_SORT"

// DefaultAlgorithm returns AlgorithmMerge, unless CLASSICS_SORT names another
// algorithm. Unrecognised values are ignored.
func DefaultAlgorithm() Algorithm {
	val := os.Getenv(DefaultAlgorithmEnv)
	if val == "" {
		return AlgorithmMerge
	}
	if a, err := ParseAlgorithm(strings.TrimSpace(val)); err == nil {
		return a
	}
	return AlgorithmMerge
}

// Sort sorts data in place with the selected algorithm. Counting sort's
// result is copied back into data. An unknown Algorithm falls back to merge
// sort.
func Sort[T classic.Signed](a Algorithm, data []T) {
	SortBy(a, data, identity[T])
}

// SortBy sorts data in place by key with the selected algorithm.
func SortBy[E any, K classic.Signed](a Algorithm, data []E, key func(E) K) {
	switch a {
	case AlgorithmBubble:
		BubbleBy(data, key)
	case AlgorithmQuick:
		QuickBy(data, key, PivotLast)
	case AlgorithmCounting:
		copy(data, CountingBy(data, key))
	default:
		MergeBy(data, key)
	}
}

func identity[T classic.Signed](v T) T {
	return v
}
