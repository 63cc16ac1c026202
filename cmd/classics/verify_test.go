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
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-classics/classic/contrib/workerpool"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestVerifierRun(t *testing.T) {
	cfg := DefaultVerifyConfig()
	cfg.Trials = 200
	cfg.MaxLen = 40
	cfg.Workers = 4

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()

	reports, err := NewVerifier(cfg, pool, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for i, name := range []string{"sort", "search", "subarray"} {
		assert.Equal(t, name, reports[i].Suite)
		assert.Equal(t, cfg.Trials, reports[i].Cases)
		assert.Positive(t, reports[i].Checks)
	}
}

func TestVerifierReportsViolation(t *testing.T) {
	cfg := DefaultVerifyConfig()
	cfg.Trials = 50
	cfg.MaxLen = 5

	pool := workerpool.New(2)
	defer pool.Close()

	v := NewVerifier(cfg, pool, discardLogger())
	v.suites = append(v.suites, suite{
		name: "broken",
		check: func(data []int64) (int, error) {
			if len(data) > 2 {
				return 1, violation("len %d", len(data))
			}
			return 1, nil
		},
	})

	_, err := v.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPropertyViolated)
	assert.Contains(t, err.Error(), "broken suite")
}

func TestVerifierCancelled(t *testing.T) {
	cfg := DefaultVerifyConfig()
	pool := workerpool.New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewVerifier(cfg, pool, discardLogger()).Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestRandomCaseRespectsConfig(t *testing.T) {
	cfg := DefaultVerifyConfig()
	cfg.MaxLen = 10
	cfg.MinValue, cfg.MaxValue = -2, 2
	v := NewVerifier(cfg, nil, discardLogger())

	for seed := range int64(100) {
		data := v.randomCase(rand.New(rand.NewSource(seed)))
		assert.LessOrEqual(t, len(data), 10)
		for _, x := range data {
			assert.GreaterOrEqual(t, x, int64(-2))
			assert.LessOrEqual(t, x, int64(2))
		}
	}
}

func TestChecks(t *testing.T) {
	inputs := [][]int64{
		nil,
		{5, 3, 8, 4, 2},
		{-2, -1, -3},
		{64, 34, 25, 12, 22, 11, 90},
		{-5, 2, -3, 7, 0, -1},
		{1, 1, 1, 1},
	}
	for _, data := range inputs {
		for _, s := range NewVerifier(DefaultVerifyConfig(), nil, discardLogger()).suites {
			n, err := s.check(data)
			assert.NoError(t, err, "%s(%v)", s.name, data)
			assert.Positive(t, n, "%s(%v)", s.name, data)
		}
	}
}
