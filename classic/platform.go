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

package classic

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Platform describes the machine the algorithms are running on. It does not
// change what any algorithm computes; it is reported next to benchmark and
// verification results so they can be compared across machines.
type Platform struct {
	// Arch is the GOARCH the binary was built for.
	Arch string

	// CacheLineSize is the cache line size in bytes assumed by x/sys/cpu.
	CacheLineSize int

	// Features lists the detected CPU features relevant to memory-bound
	// loops, in a fixed order.
	Features []string

	// MaxProcs is GOMAXPROCS at detection time.
	MaxProcs int
}

// platform is detected once at init.
var platform Platform

func init() {
	platform = Platform{
		Arch:          runtime.GOARCH,
		CacheLineSize: int(unsafe.Sizeof(cpu.CacheLinePad{})),
		Features:      detectFeatures(),
		MaxProcs:      runtime.GOMAXPROCS(0),
	}
}

// CurrentPlatform returns the platform detected at startup.
func CurrentPlatform() Platform {
	p := platform
	p.Features = append([]string(nil), platform.Features...)
	return p
}

// IntsPerCacheLine returns how many values of type T fit in one cache line.
func IntsPerCacheLine[T Signed]() int {
	var zero T
	return platform.CacheLineSize / int(unsafe.Sizeof(zero))
}
