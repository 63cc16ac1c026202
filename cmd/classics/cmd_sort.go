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

	"github.com/ajroetker/go-classics/classic"
	"github.com/ajroetker/go-classics/classic/contrib/sort"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		algoName  string
		pivotName string
	)

	cmd := &cobra.Command{
		Use:   "sort [flags] -- INT...",
		Short: "Sort integers with the selected algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseInts(args)
			if err != nil {
				return err
			}

			algo := sort.DefaultAlgorithm()
			if algoName != "" {
				if algo, err = sort.ParseAlgorithm(algoName); err != nil {
					return err
				}
			}

			pivot, err := parsePivot(pivotName)
			if err != nil {
				return err
			}

			var swaps int
			switch {
			case algo == sort.AlgorithmBubble:
				swaps = sort.Bubble(data)
			case algo == sort.AlgorithmQuick:
				sort.QuickWith(data, pivot)
			default:
				sort.Sort(algo, data)
			}

			a.logger.Debug("sorted", "algorithm", algo, "len", len(data), "stable", algo.Stable())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatInts(data))
			if algo == sort.AlgorithmBubble {
				fmt.Fprintf(out, "swaps: %d\n", swaps)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&algoName, "algo", "", "algorithm: bubble, merge, quick, counting (default merge, or $"+sort.DefaultAlgorithmEnv+")")
	cmd.Flags().StringVar(&pivotName, "pivot", "last", "quick sort pivot rule: last, median-of-3, random")
	return cmd
}

func parsePivot(name string) (sort.Pivot, error) {
	for _, p := range []sort.Pivot{sort.PivotLast, sort.PivotMedianOf3, sort.PivotRandom} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown pivot rule %q: %w", name, classic.ErrInvalidArgument)
}
