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
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-classics/classic"
)

// parseInts parses the integer sequence given on the command line. Each
// argument may hold several values separated by commas or whitespace, so
// "5 3 8", "5,3,8" and "5, 3, 8" are all accepted.
func parseInts(args []string) ([]int64, error) {
	var out []int64
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		for _, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", f, classic.ErrInvalidArgument)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// formatInts renders a sequence the way the commands print it: [a b c].
func formatInts(data []int64) string {
	return "[" + strings.Join(lo.Map(data, func(v int64, _ int) string {
		return strconv.FormatInt(v, 10)
	}), " ") + "]"
}
