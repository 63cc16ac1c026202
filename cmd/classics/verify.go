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

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"modernc.org/sortutil"

	"github.com/ajroetker/go-classics/classic"
	"github.com/ajroetker/go-classics/classic/contrib/search"
	"github.com/ajroetker/go-classics/classic/contrib/sort"
	"github.com/ajroetker/go-classics/classic/contrib/subarray"
	"github.com/ajroetker/go-classics/classic/contrib/workerpool"
)

// ErrPropertyViolated is wrapped by every failed check.
var ErrPropertyViolated = errors.New("property violated")

// suite is a named group of checks run against every random case.
// check returns how many individual assertions it made.
type suite struct {
	name  string
	check func(data []int64) (int, error)
}

// SuiteReport summarises one suite of a verification run.
type SuiteReport struct {
	Suite    string
	Cases    int
	Checks   int64
	Duration time.Duration
}

// Verifier runs the property suites over a shared worker pool.
type Verifier struct {
	cfg    VerifyConfig
	pool   *workerpool.Pool
	logger *slog.Logger
	suites []suite
}

// NewVerifier returns a Verifier for cfg. The caller owns pool.
func NewVerifier(cfg VerifyConfig, pool *workerpool.Pool, logger *slog.Logger) *Verifier {
	return &Verifier{
		cfg:    cfg,
		pool:   pool,
		logger: logger,
		suites: []suite{
			{name: "sort", check: checkSort},
			{name: "search", check: checkSearch},
			{name: "subarray", check: checkSubarray},
		},
	}
}

// Run executes every suite concurrently and returns one report per suite,
// in suite order. The first violation cancels the rest of the run.
func (v *Verifier) Run(ctx context.Context) ([]SuiteReport, error) {
	reports := make([]SuiteReport, len(v.suites))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range v.suites {
		g.Go(func() error {
			r, err := v.runSuite(ctx, s)
			reports[i] = r
			return err
		})
	}
	err := g.Wait()
	return reports, err
}

func (v *Verifier) runSuite(ctx context.Context, s suite) (SuiteReport, error) {
	start := time.Now()
	var checks atomic.Int64
	var cases atomic.Int64

	v.logger.Debug("suite started", "suite", s.name, "trials", v.cfg.Trials)
	err := v.pool.Run(ctx, v.cfg.Trials, func(_ context.Context, i int) error {
		seed := v.cfg.Seed + int64(i)
		data := v.randomCase(rand.New(rand.NewSource(seed)))
		n, err := s.check(data)
		checks.Add(int64(n))
		cases.Add(1)
		if err != nil {
			return fmt.Errorf("%s suite, case %d (seed %d, input %s): %w", s.name, i, seed, formatInts(data), err)
		}
		return nil
	})

	report := SuiteReport{
		Suite:    s.name,
		Cases:    int(cases.Load()),
		Checks:   checks.Load(),
		Duration: time.Since(start),
	}
	v.logger.Debug("suite finished", "suite", s.name, "cases", report.Cases, "checks", report.Checks, "duration", report.Duration)
	return report, err
}

// randomCase draws a sequence of length [0, MaxLen] with elements in
// [MinValue, MaxValue].
func (v *Verifier) randomCase(rng *rand.Rand) []int64 {
	n := rng.Intn(v.cfg.MaxLen + 1)
	width := v.cfg.MaxValue - v.cfg.MinValue + 1
	data := make([]int64, n)
	for i := range data {
		data[i] = v.cfg.MinValue + rng.Int63n(width)
	}
	return data
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPropertyViolated, fmt.Sprintf(format, args...))
}

// checkSort verifies every algorithm (and every quicksort pivot rule) sorts,
// permutes, is idempotent, and is stable where it claims to be. It also
// checks that bubble sort's swap count equals the inversion count.
func checkSort(data []int64) (int, error) {
	checks := 0
	verify := func(name string, sortFn func([]int64)) error {
		got := slices.Clone(data)
		sortFn(got)
		checks += 3
		if !classic.IsSorted(got) {
			return violation("%s: output %s is not sorted", name, formatInts(got))
		}
		if !classic.IsPermutation(data, got) {
			return violation("%s: output %s is not a permutation of the input", name, formatInts(got))
		}
		again := slices.Clone(got)
		sortFn(again)
		if !slices.Equal(again, got) {
			return violation("%s: sorting sorted output changed it to %s", name, formatInts(again))
		}
		return nil
	}

	for _, a := range sort.Algorithms() {
		if err := verify(a.String(), func(d []int64) { sort.Sort(a, d) }); err != nil {
			return checks, err
		}
		if a.Stable() {
			tagged := classic.Tag(data)
			sort.SortBy(a, tagged, classic.TagValue[int64])
			checks++
			if !classic.IsStable(tagged) {
				return checks, violation("%s: equal elements changed relative order", a)
			}
		}
	}

	for _, p := range []sort.Pivot{sort.PivotMedianOf3, sort.PivotRandom} {
		if err := verify("quick/"+p.String(), func(d []int64) { sort.QuickWith(d, p) }); err != nil {
			return checks, err
		}
	}

	checks++
	if swaps, inv := sort.Bubble(slices.Clone(data)), sort.Inversions(data); swaps != inv {
		return checks, violation("bubble made %d swaps, input has %d inversions", swaps, inv)
	}
	return checks, nil
}

// checkSearch sorts the case and probes every distinct value and both of
// its neighbours with every search method and the insertion point.
func checkSearch(data []int64) (int, error) {
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	distinct := sortutil.Int64Slice(slices.Clone(sorted))
	distinct = distinct[:sortutil.Dedupe(distinct)]

	targets := make([]int64, 0, 3*len(distinct)+1)
	targets = append(targets, 0)
	for _, v := range distinct {
		targets = append(targets, v-1, v, v+1)
	}

	checks := 0
	for _, target := range targets {
		want, present := slices.BinarySearch(sorted, target)

		for _, m := range search.Methods() {
			got := search.Search(m, sorted, target)
			checks++
			if present && (got == search.NotFound || sorted[got] != target) {
				return checks, violation("%s(%d) = %d on %s, want an index holding %d", m, target, got, formatInts(sorted), target)
			}
			if !present && got != search.NotFound {
				return checks, violation("%s(%d) = %d on %s, want %d", m, target, got, formatInts(sorted), search.NotFound)
			}
		}

		checks++
		if got := search.InsertionPoint(sorted, target); got != want {
			return checks, violation("InsertionPoint(%d) = %d on %s, want %d", target, got, formatInts(sorted), want)
		}
	}
	return checks, nil
}

// checkSubarray cross-checks Kadane against brute force.
func checkSubarray(data []int64) (int, error) {
	if len(data) == 0 {
		if _, err := subarray.Kadane(data); !errors.Is(err, subarray.ErrEmpty) {
			return 1, violation("Kadane(empty) error = %v, want ErrEmpty", err)
		}
		if got := subarray.BruteForce(data); got != classic.MinValue[int64]() {
			return 2, violation("BruteForce(empty) = %d, want %d", got, classic.MinValue[int64]())
		}
		return 2, nil
	}

	want := subarray.BruteForce(data)
	got, err := subarray.Kadane(data)
	if err != nil {
		return 1, violation("Kadane error: %v", err)
	}
	if got != want {
		return 1, violation("Kadane = %d, BruteForce = %d", got, want)
	}

	r, err := subarray.KadaneRange(data)
	if err != nil {
		return 2, violation("KadaneRange error: %v", err)
	}
	var sum int64
	for _, v := range data[r.Start:r.End] {
		sum += v
	}
	if r.Sum != want || sum != want || r.Len() < 1 {
		return 2, violation("KadaneRange = %+v (slice sums to %d), BruteForce = %d", r, sum, want)
	}
	return 2, nil
}
