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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Limits keep brute-force cross-checks fast and their sums inside int64.
const (
	maxCaseLen    = 4096
	maxValueMagn  = int64(1) << 40
	defaultTrials = 2000
)

// ErrInvalidConfig is wrapped by every VerifyConfig validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// VerifyConfig controls the randomized property checks run by
// "classics verify".
//
// Thread Safety: Safe to read concurrently. Not safe to modify after
// validation.
type VerifyConfig struct {
	// Trials is the number of random cases generated per suite.
	Trials int `yaml:"trials"`

	// Seed makes runs reproducible; case i of every suite uses Seed+i.
	Seed int64 `yaml:"seed"`

	// MaxLen is the largest sequence length generated.
	MaxLen int `yaml:"max_len"`

	// MinValue and MaxValue bound the generated elements, inclusive.
	MinValue int64 `yaml:"min_value"`
	MaxValue int64 `yaml:"max_value"`

	// Workers is the worker pool size; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultVerifyConfig returns the configuration used when neither a file
// nor the environment overrides anything.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		Trials:   defaultTrials,
		Seed:     1,
		MaxLen:   64,
		MinValue: -50,
		MaxValue: 50,
		Workers:  0,
		LogLevel: "info",
	}
}

// LoadVerifyConfig loads configuration with priority: env > file > defaults.
// configPath may be empty. A missing file is an error only when the path
// was given explicitly.
func LoadVerifyConfig(configPath string) (VerifyConfig, error) {
	config := DefaultVerifyConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return config, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	if err := loadVerifyConfigFromEnv(&config); err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

func loadVerifyConfigFromEnv(config *VerifyConfig) error {
	ints := []struct {
		env string
		dst *int
	}{
		{"CLASSICS_TRIALS", &config.Trials},
		{"CLASSICS_MAX_LEN", &config.MaxLen},
		{"CLASSICS_WORKERS", &config.Workers},
	}
	for _, e := range ints {
		if v := os.Getenv(e.env); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, e.env, v, err)
			}
			*e.dst = i
		}
	}

	int64s := []struct {
		env string
		dst *int64
	}{
		{"CLASSICS_SEED", &config.Seed},
		{"CLASSICS_MIN_VALUE", &config.MinValue},
		{"CLASSICS_MAX_VALUE", &config.MaxValue},
	}
	for _, e := range int64s {
		if v := os.Getenv(e.env); v != "" {
			i, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, e.env, v, err)
			}
			*e.dst = i
		}
	}

	if v := os.Getenv("CLASSICS_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	return nil
}

// Validate checks that the configuration can drive a verification run.
func (c VerifyConfig) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.MaxLen < 0 || c.MaxLen > maxCaseLen {
		return fmt.Errorf("%w: max_len must be in [0, %d], got %d", ErrInvalidConfig, maxCaseLen, c.MaxLen)
	}
	if c.MinValue > c.MaxValue {
		return fmt.Errorf("%w: min_value %d exceeds max_value %d", ErrInvalidConfig, c.MinValue, c.MaxValue)
	}
	if c.MinValue < -maxValueMagn || c.MaxValue > maxValueMagn {
		return fmt.Errorf("%w: values must lie in [%d, %d]", ErrInvalidConfig, -maxValueMagn, maxValueMagn)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
	}
	return level, nil
}
