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
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/ajroetker/go-classics/classic"
)

type searchFunc func(data []int, target int) int

var searchFuncs = []struct {
	name string
	fn   searchFunc
}{
	{"halving", Halving[int]},
	{"jumping", Jumping[int]},
	{"recursive", Recursive[int]},
}

func TestSearchEmpty(t *testing.T) {
	for _, sf := range searchFuncs {
		t.Run(sf.name, func(t *testing.T) {
			if got := sf.fn(nil, 5); got != NotFound {
				t.Errorf("%s(nil, 5) = %d, want NotFound", sf.name, got)
			}
			if got := sf.fn([]int{}, 0); got != NotFound {
				t.Errorf("%s([], 0) = %d, want NotFound", sf.name, got)
			}
		})
	}
	if got := InsertionPoint([]int{}, 7); got != 0 {
		t.Errorf("InsertionPoint([], 7) = %d, want 0", got)
	}
}

func TestSearchDistinct(t *testing.T) {
	data := []int{-10, -5, 0, 1, 3, 5, 7, 9, 10}
	for _, sf := range searchFuncs {
		t.Run(sf.name, func(t *testing.T) {
			for i, v := range data {
				if got := sf.fn(data, v); got != i {
					t.Errorf("%s(%v, %d) = %d, want %d", sf.name, data, v, got, i)
				}
			}
			for _, miss := range []int{-11, -6, 2, 4, 8, 11} {
				if got := sf.fn(data, miss); got != NotFound {
					t.Errorf("%s(%v, %d) = %d, want NotFound", sf.name, data, miss, got)
				}
			}
		})
	}
}

func TestSearchDuplicates(t *testing.T) {
	tests := []struct {
		data   []int
		target int
	}{
		{[]int{1, 1, 1, 1}, 1},
		{[]int{1, 2, 2, 2, 3, 4, 5}, 2},
		{[]int{5, 5}, 5},
	}
	for _, sf := range searchFuncs {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%v", sf.name, tt.data), func(t *testing.T) {
				got := sf.fn(tt.data, tt.target)
				if got == NotFound || tt.data[got] != tt.target {
					t.Errorf("%s(%v, %d) = %d, want an index holding %d", sf.name, tt.data, tt.target, got, tt.target)
				}
			})
		}
	}
}

func TestJumpingFindsLastOccurrence(t *testing.T) {
	data := []int{1, 2, 2, 2, 3, 4, 5}
	if got := Jumping(data, 2); got != 3 {
		t.Errorf("Jumping(%v, 2) = %d, want 3", data, got)
	}
	ones := []int{1, 1, 1, 1}
	if got := Jumping(ones, 1); got != 3 {
		t.Errorf("Jumping(%v, 1) = %d, want 3", ones, got)
	}
}

func TestInsertionPoint(t *testing.T) {
	tests := []struct {
		data   []int
		target int
		want   int
	}{
		{[]int{1, 3, 5, 7}, 4, 2},
		{[]int{1, 3, 5, 7}, 0, 0},
		{[]int{1, 3, 5, 7}, 1, 0},
		{[]int{1, 3, 5, 7}, 7, 3},
		{[]int{1, 3, 5, 7}, 8, 4},
		{[]int{1, 2, 2, 2, 3}, 2, 1},
		{[]int{1}, 0, 0},
		{[]int{1}, 2, 1},
		{[]int{-10, -5, 0, 5, 10}, 3, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%d", tt.data, tt.target), func(t *testing.T) {
			if got := InsertionPoint(tt.data, tt.target); got != tt.want {
				t.Errorf("InsertionPoint(%v, %d) = %d, want %d", tt.data, tt.target, got, tt.want)
			}
		})
	}
}

// TestSearchRandom checks every variant against the lower-bound contract on
// random sorted input with duplicates.
func TestSearchRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sizes := []int{1, 2, 3, 7, 8, 15, 16, 31, 32, 100, 257}
	for _, n := range sizes {
		data := make([]int64, n)
		for i := range data {
			data[i] = rng.Int63n(int64(n)) - int64(n/2)
		}
		slices.Sort(data)

		lo, hi := data[0]-2, data[n-1]+2
		for target := lo; target <= hi; target++ {
			present := slices.Contains(data, target)
			for _, m := range Methods() {
				got := Search(m, data, target)
				switch {
				case present && (got == NotFound || data[got] != target):
					t.Fatalf("%s(n=%d, %d) = %d, want an index holding %d", m, n, target, got, target)
				case !present && got != NotFound:
					t.Fatalf("%s(n=%d, %d) = %d, want NotFound", m, n, target, got)
				}
			}

			p := InsertionPoint(data, target)
			for i := 0; i < p; i++ {
				if data[i] >= target {
					t.Fatalf("InsertionPoint(n=%d, %d) = %d, but data[%d] = %d >= target", n, target, p, i, data[i])
				}
			}
			for i := p; i < n; i++ {
				if data[i] < target {
					t.Fatalf("InsertionPoint(n=%d, %d) = %d, but data[%d] = %d < target", n, target, p, i, data[i])
				}
			}
			if want, _ := slices.BinarySearch(data, target); p != want {
				t.Fatalf("InsertionPoint(n=%d, %d) = %d, slices.BinarySearch = %d", n, target, p, want)
			}
		}
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(m.String())
		if err != nil {
			t.Fatalf("ParseMethod(%q) error: %v", m, err)
		}
		if got != m {
			t.Errorf("ParseMethod(%q) = %v, want %v", m, got, m)
		}
	}
	if got, err := ParseMethod("JUMPING"); err != nil || got != MethodJumping {
		t.Errorf("ParseMethod(JUMPING) = %v, %v, want jumping", got, err)
	}

	_, err := ParseMethod("ternary")
	if !errors.Is(err, classic.ErrInvalidArgument) {
		t.Errorf("ParseMethod(ternary) error = %v, want classic.ErrInvalidArgument", err)
	}
	if s := Method(99).String(); s != "unknown" {
		t.Errorf("Method(99).String() = %q, want unknown", s)
	}
}

func BenchmarkSearch(b *testing.B) {
	data := make([]int64, 1<<16)
	for i := range data {
		data[i] = int64(2 * i)
	}
	rng := rand.New(rand.NewSource(42))
	targets := make([]int64, 1024)
	for i := range targets {
		targets[i] = rng.Int63n(int64(2 * len(data)))
	}

	for _, m := range Methods() {
		b.Run(m.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Search(m, data, targets[i%len(targets)])
			}
		})
	}
	b.Run("insertion-point", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = InsertionPoint(data, targets[i%len(targets)])
		}
	})
}
