// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package textcmp

import "znkr.io/textcmp/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of unchanged lines to include before and after each run of changes in
// [Hunks], [Unified] and [Compare]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Names sets the names rendered in the "---" and "+++" header lines of [Unified] and [Compare].
// The defaults are "expected" and "actual".
func Names(expected, actual string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.NameX = expected
		cfg.NameY = actual
		return config.Names
	}
}
