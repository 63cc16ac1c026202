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
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands.
type app struct {
	logLevel string
	logger   *slog.Logger
}

// newRootCmd builds the command tree. Output goes to the command's out and
// err writers so tests can capture it.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "classics",
		Short: "Run and verify classic sorting, searching and max-subarray algorithms",
		Long: `classics exposes bubble, merge, quick and counting sort, three binary
search variants with insertion points, and Kadane's maximum subarray sum.
The verify command checks every algorithm against its properties on
reproducible random input.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config or info)")

	root.AddCommand(
		newSortCmd(a),
		newSearchCmd(a),
		newMaxSubCmd(a),
		newVerifyCmd(a),
		newInfoCmd(a),
	)
	return root
}

// setupLogger installs a text logger on the command's error stream.
func (a *app) setupLogger(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.logLevel != "" {
		l, err := parseLogLevel(a.logLevel)
		if err != nil {
			return err
		}
		level = l
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}
