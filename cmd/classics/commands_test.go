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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-classics/classic"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestParseInts(t *testing.T) {
	got, err := parseInts([]string{"5", "3,8", " -4, 2 "})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 8, -4, 2}, got)

	got, err = parseInts(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseInts([]string{"1", "two"})
	assert.ErrorIs(t, err, classic.ErrInvalidArgument)
}

func TestFormatInts(t *testing.T) {
	assert.Equal(t, "[]", formatInts(nil))
	assert.Equal(t, "[-1 0 2]", formatInts([]int64{-1, 0, 2}))
}

func TestSortCommand(t *testing.T) {
	t.Setenv("CLASSICS_SORT", "")

	for _, algo := range []string{"bubble", "merge", "quick", "counting"} {
		t.Run(algo, func(t *testing.T) {
			out, err := run(t, "sort", "--algo", algo, "--", "64", "34", "25", "12", "22", "11", "90")
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, "[11 12 22 25 34 64 90]\n"), "got %q", out)
		})
	}

	out, err := run(t, "sort", "--algo", "bubble", "5,3,8,4,2")
	require.NoError(t, err)
	assert.Equal(t, "[2 3 4 5 8]\nswaps: 7\n", out)

	out, err = run(t, "sort", "--algo", "quick", "--pivot", "median-of-3", "--", "-5", "2", "-3", "7", "0", "-1")
	require.NoError(t, err)
	assert.Equal(t, "[-5 -3 -1 0 2 7]\n", out)

	_, err = run(t, "sort", "--algo", "heap", "1")
	assert.ErrorIs(t, err, classic.ErrInvalidArgument)

	_, err = run(t, "sort", "--pivot", "middle", "1")
	assert.ErrorIs(t, err, classic.ErrInvalidArgument)
}

func TestSortCommandDefaultFromEnv(t *testing.T) {
	t.Setenv("CLASSICS_SORT", "bubble")
	out, err := run(t, "sort", "2,1")
	require.NoError(t, err)
	assert.Equal(t, "[1 2]\nswaps: 1\n", out)
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "--target", "4", "1,3,5,7")
	require.NoError(t, err)
	assert.Equal(t, "index: -1\ninsertion point: 2\n", out)

	out, err = run(t, "search", "--method", "jumping", "--target", "2", "1,2,2,2,3")
	require.NoError(t, err)
	assert.Equal(t, "index: 3\ninsertion point: 1\n", out)

	out, err = run(t, "search", "--method", "recursive", "--target", "9")
	require.NoError(t, err)
	assert.Equal(t, "index: -1\ninsertion point: 0\n", out)

	_, err = run(t, "search", "1,2,3")
	assert.Error(t, err, "--target is required")

	_, err = run(t, "search", "--method", "ternary", "--target", "1", "1")
	assert.ErrorIs(t, err, classic.ErrInvalidArgument)
}

func TestMaxSubCommand(t *testing.T) {
	out, err := run(t, "maxsub", "--", "-2", "1", "-3", "4", "-1", "2", "1", "-5", "4")
	require.NoError(t, err)
	assert.Equal(t, "sum: 6\nrange: [3, 7) [4 -1 2 1]\n", out)

	out, err = run(t, "maxsub", "--", "-2,-1,-3")
	require.NoError(t, err)
	assert.Equal(t, "sum: -1\nrange: [1, 2) [-1]\n", out)

	out, err = run(t, "maxsub", "--brute", "--", "-2,-1,-3")
	require.NoError(t, err)
	assert.Equal(t, "sum: -1\n", out)

	_, err = run(t, "maxsub")
	assert.ErrorIs(t, err, classic.ErrInvalidArgument)
}

func TestVerifyCommand(t *testing.T) {
	clearVerifyEnv(t)

	out, err := run(t, "--log-level", "error", "verify", "--trials", "50", "--seed", "7")
	require.NoError(t, err)
	for _, suite := range []string{"sort", "search", "subarray"} {
		assert.Contains(t, out, suite)
	}
	assert.Equal(t, 3, strings.Count(out, "ok\n"))

	_, err = run(t, "verify", "--trials", "-1")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestInfoCommand(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "arch:")
	assert.Contains(t, out, "cache line:")
	assert.Contains(t, out, "sort (default):")
}

func TestBadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "info")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
