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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// textcmp.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks.
	Context int

	// MaxCost bounds the edit distance searched by the Myers engine. When the bound is hit, the
	// engine gives up on minimality and emits a degenerate block of deletions and insertions
	// instead. This keeps time and memory bounded for pathological inputs.
	MaxCost int

	// MaxChanged is the display budget: the maximum number of changed (deleted or inserted)
	// lines rendered before the output is truncated.
	MaxChanged int

	// NameX and NameY are the names used in the "---" and "+++" header lines.
	NameX, NameY string
}

// Default is the default configuration.
var Default = Config{
	Context:    3,
	MaxCost:    500,
	MaxChanged: 100,
	NameX:      "expected",
	NameY:      "actual",
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// in a function that doesn't support them.
type Flag int

const (
	Context Flag = 1 << iota
	Names
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "textcmp.Context"
	case Names:
		return "textcmp.Names"
	default:
		panic("never reached")
	}
}
