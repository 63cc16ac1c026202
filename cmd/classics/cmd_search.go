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

	"github.com/ajroetker/go-classics/classic/contrib/search"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		methodName string
		target     int64
	)

	cmd := &cobra.Command{
		Use:   "search --target N [flags] -- INT...",
		Short: "Binary search a sorted sequence",
		Long: `Search a sequence that is already sorted in non-decreasing order.
The input is not checked; unsorted input gives unspecified results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseInts(args)
			if err != nil {
				return err
			}
			method, err := search.ParseMethod(methodName)
			if err != nil {
				return err
			}

			idx := search.Search(method, data, target)
			insert := search.InsertionPoint(data, target)
			a.logger.Debug("searched", "method", method, "len", len(data), "target", target)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "index: %d\n", idx)
			fmt.Fprintf(out, "insertion point: %d\n", insert)
			return nil
		},
	}
	cmd.Flags().StringVar(&methodName, "method", search.MethodHalving.String(), "search method: halving, jumping, recursive")
	cmd.Flags().Int64Var(&target, "target", 0, "value to search for")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
