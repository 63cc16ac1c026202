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
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-classics/classic"
	"github.com/ajroetker/go-classics/classic/contrib/workerpool"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		configPath string
		trials     int
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every algorithm against its properties on random input",
		Long: `Generate reproducible random sequences and check that every sorter
returns a sorted permutation (stable where promised), that every search
method agrees with the lower bound, and that Kadane agrees with brute force.

Configuration priority: flags > environment (CLASSICS_*) > --config file > defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadVerifyConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("trials") {
				cfg.Trials = trials
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := a.logger
			if a.logLevel == "" {
				level, _ := parseLogLevel(cfg.LogLevel)
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			}

			p := classic.CurrentPlatform()
			pool := workerpool.New(cfg.Workers)
			defer pool.Close()

			logger.Info("verify started",
				"trials", cfg.Trials,
				"seed", cfg.Seed,
				"max_len", cfg.MaxLen,
				"min_value", cfg.MinValue,
				"max_value", cfg.MaxValue,
				"workers", pool.NumWorkers(),
				"arch", p.Arch,
			)

			start := time.Now()
			reports, err := NewVerifier(cfg, pool, logger).Run(cmd.Context())
			if err != nil {
				logger.Error("verify failed", "error", err)
				return err
			}

			out := cmd.OutOrStdout()
			var total int64
			for _, r := range reports {
				total += r.Checks
				fmt.Fprintf(out, "%-9s %6d cases %9d checks  ok\n", r.Suite, r.Cases, r.Checks)
			}
			logger.Info("verify passed", "checks", total, "duration", time.Since(start))
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().IntVar(&trials, "trials", 0, "random cases per suite (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base random seed (overrides config)")
	return cmd
}
