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
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-classics/classic"
	"github.com/ajroetker/go-classics/classic/contrib/sort"
)

func newInfoCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print platform details and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := classic.CurrentPlatform()
			features := strings.Join(p.Features, ",")
			if features == "" {
				features = "none detected"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "go:                  %s\n", runtime.Version())
			fmt.Fprintf(out, "arch:                %s\n", p.Arch)
			fmt.Fprintf(out, "cpu features:        %s\n", features)
			fmt.Fprintf(out, "cache line:          %d bytes (%d int64 values)\n", p.CacheLineSize, classic.IntsPerCacheLine[int64]())
			fmt.Fprintf(out, "workers (default):   %d\n", p.MaxProcs)
			fmt.Fprintf(out, "sort (default):      %s\n", sort.DefaultAlgorithm())
			return nil
		},
	}
}
