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

// Command classics runs the go-classics algorithms from the command line and
// verifies them against their properties on random input.
//
// Usage:
//
//	classics sort --algo quick -- 5 3 8 -4 2
//	classics search --method jumping --target 4 1,3,5,7
//	classics maxsub -- -2 1 -3 4 -1 2 1 -5 4
//	classics verify --config verify.yaml
//	classics info
//
// Negative numbers must follow "--" or be passed comma-separated so they are
// not taken for flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
