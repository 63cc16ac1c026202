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

package search

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-classics/classic"
)

// NotFound is returned by the search variants when target is absent.
const NotFound = -1

// Halving returns an index i with data[i] == target, or NotFound.
//
// The candidate range is the closed interval [left, right]; if target is
// present it lies inside the interval at the top of every iteration.
func Halving[T classic.Signed](data []T, target T) int {
	left, right := 0, len(data)-1
	for left <= right {
		// left + (right-left)/2 cannot overflow, unlike (left+right)/2.
		mid := left + (right-left)/2
		switch {
		case data[mid] == target:
			return mid
		case data[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return NotFound
}

// Jumping returns an index i with data[i] == target, or NotFound.
//
// It starts at index 0 with a jump of len(data)/2 and halves the jump down
// to 1, advancing while the probed element is still <= target. The final
// position is the last index whose element is <= target, so with duplicates
// the last occurrence is returned.
func Jumping[T classic.Signed](data []T, target T) int {
	n := len(data)
	if n == 0 {
		return NotFound
	}

	pos := 0
	for jump := n / 2; jump >= 1; jump /= 2 {
		for pos+jump < n && data[pos+jump] <= target {
			pos += jump
		}
	}

	if data[pos] == target {
		return pos
	}
	return NotFound
}

// Recursive returns an index i with data[i] == target, or NotFound.
// It probes the same midpoints as Halving.
func Recursive[T classic.Signed](data []T, target T) int {
	return recursive(data, 0, len(data)-1, target)
}

func recursive[T classic.Signed](data []T, left, right int, target T) int {
	if left > right {
		return NotFound
	}
	mid := left + (right-left)/2
	if data[mid] == target {
		return mid
	}
	if data[mid] > target {
		return recursive(data, left, mid-1, target)
	}
	return recursive(data, mid+1, right, target)
}

// InsertionPoint returns the smallest index p such that every element
// before p is < target and every element from p on is >= target.
// It returns 0 for an empty slice and len(data) when target exceeds all
// elements.
func InsertionPoint[T classic.Signed](data []T, target T) int {
	// Half-open interval [left, right).
	left, right := 0, len(data)
	for left < right {
		mid := left + (right-left)/2
		if data[mid] < target {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left
}

// Method selects one of the search variants.
type Method int

const (
	// MethodHalving selects Halving.
	MethodHalving Method = iota

	// MethodJumping selects Jumping.
	MethodJumping

	// MethodRecursive selects Recursive.
	MethodRecursive
)

// Methods returns every search method in declaration order.
func Methods() []Method {
	return []Method{MethodHalving, MethodJumping, MethodRecursive}
}

// String returns the method name accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodHalving:
		return "halving"
	case MethodJumping:
		return "jumping"
	case MethodRecursive:
		return "recursive"
	default:
		return "unknown"
	}
}

// ParseMethod returns the Method with the given name, ignoring case.
func ParseMethod(name string) (Method, error) {
	for _, m := range Methods() {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("search: unknown method %q: %w", name, classic.ErrInvalidArgument)
}

// Search dispatches to the variant selected by m. An unknown Method falls
// back to Halving.
func Search[T classic.Signed](m Method, data []T, target T) int {
	switch m {
	case MethodJumping:
		return Jumping(data, target)
	case MethodRecursive:
		return Recursive(data, target)
	default:
		return Halving(data, target)
	}
}
