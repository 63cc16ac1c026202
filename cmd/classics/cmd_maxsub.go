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

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-classics/classic/contrib/subarray"
)

func newMaxSubCmd(a *app) *cobra.Command {
	var brute bool

	cmd := &cobra.Command{
		Use:   "maxsub [flags] -- INT...",
		Short: "Find the maximum contiguous subarray sum",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseInts(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if brute {
				// BruteForce reports MinInt64 for empty input instead of failing.
				fmt.Fprintf(out, "sum: %d\n", subarray.BruteForce(data))
				return nil
			}

			r, err := subarray.KadaneRange(data)
			if err != nil {
				return err
			}
			a.logger.Debug("max subarray", "len", len(data), "start", r.Start, "end", r.End)
			fmt.Fprintf(out, "sum: %d\n", r.Sum)
			fmt.Fprintf(out, "range: [%d, %d) %s\n", r.Start, r.End, formatInts(data[r.Start:r.End]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&brute, "brute", false, "use the O(n²) brute-force algorithm")
	return cmd
}
