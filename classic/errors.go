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

import "errors"

// ErrInvalidArgument reports a violated precondition, such as an empty
// sequence where at least one element is required. Packages wrap it with
// their own context, so callers should match it with errors.Is.
var ErrInvalidArgument = errors.New("classic: invalid argument")
