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

import (
	"znkr.io/textcmp/internal/config"
	"znkr.io/textcmp/internal/edit"
	"znkr.io/textcmp/internal/hunk"
	"znkr.io/textcmp/internal/lines"
	"znkr.io/textcmp/internal/myers"
)

// Op describes a single edit operation.
type Op = edit.Op

const (
	Match  = edit.Match  // Both lines are identical.
	Delete = edit.Delete // A deletion of a line from the expected text.
	Insert = edit.Insert // An insertion of a line from the actual text.
)

// Edit describes a single line edit of a diff.
//
//   - For Match, X and Y are the 0-based line numbers of the matching line in the expected and
//     actual text.
//   - For Delete, X is the line number of the deleted line and Y is -1.
//   - For Insert, Y is the line number of the inserted line and X is -1.
//
// Text is the line content without its trailing newline.
type Edit struct {
	Op   Op
	X, Y int
	Text string
}

// Hunk describes a sequence of consecutive edits. PosX and PosY are the 0-based positions in the
// expected and actual text at which the sequence starts.
type Hunk struct {
	PosX, PosY int
	Edits      []Edit
}

// MismatchError signals that expected and actual differ. Its message is the rendered unified
// diff, or a short explanation where a diff would carry no information.
type MismatchError struct {
	Message string
}

func (e *MismatchError) Error() string { return e.Message }

// Compare compares expected and actual line by line. It returns nil if the texts are identical
// and a [*MismatchError] carrying the unified diff otherwise.
//
// The following options are supported: [Context], [Names]
func Compare(expected, actual string, opts ...Option) error {
	cfg := config.FromOptions(opts, config.Context|config.Names)
	if d := unified(expected, actual, cfg); d != "" {
		return &MismatchError{Message: d}
	}
	return nil
}

// Unified compares expected and actual line by line and returns the changes necessary to convert
// from one to the other in unified format. If the texts are identical, the output is empty.
//
// Deleted lines are sourced from expected, inserted lines from actual. A last line without a
// trailing newline is marked with "\ No newline at end of file"; two texts whose final lines are
// textually identical but disagree on the trailing newline compare as different. Output is
// truncated after a fixed number of changed lines.
//
// The following options are supported: [Context], [Names]
func Unified(expected, actual string, opts ...Option) string {
	cfg := config.FromOptions(opts, config.Context|config.Names)
	return unified(expected, actual, cfg)
}

func unified(x, y string, cfg config.Config) string {
	xlines, eolX := lines.Split(x)
	ylines, eolY := lines.Split(y)
	script := myers.Diff(xlines, ylines, cfg.MaxCost)
	script = edit.ReconcileEOF(script, len(xlines), len(ylines), eolX, eolY)
	hunks := hunk.Build(script, len(xlines), len(ylines), cfg.Context)
	if len(hunks) == 0 {
		return ""
	}
	hunks, truncated := hunk.Truncate(hunks, cfg.MaxChanged)
	return format(hunks, xlines, ylines, eolX, eolY, truncated, cfg)
}

// Hunks compares expected and actual line by line and returns the changes necessary to convert
// from one to the other, grouped into hunks. A hunk represents a contiguous block of changes
// along with some surrounding context. The amount of context can be configured using [Context].
//
// If the texts are identical, the output has length zero.
//
// The following option is supported: [Context]
func Hunks(expected, actual string, opts ...Option) []Hunk {
	cfg := config.FromOptions(opts, config.Context)
	xlines, eolX := lines.Split(expected)
	ylines, eolY := lines.Split(actual)
	script := myers.Diff(xlines, ylines, cfg.MaxCost)
	script = edit.ReconcileEOF(script, len(xlines), len(ylines), eolX, eolY)
	hunks := hunk.Build(script, len(xlines), len(ylines), cfg.Context)
	if len(hunks) == 0 {
		return nil
	}
	out := make([]Hunk, 0, len(hunks))
	for _, h := range hunks {
		out = append(out, Hunk{
			PosX:  h.PosX,
			PosY:  h.PosY,
			Edits: exportScript(h.Edits, xlines, ylines),
		})
	}
	return out
}

// Edits compares expected and actual line by line and returns the changes necessary to convert
// from one to the other. Edits returns one edit per line: if the texts are identical, the output
// consists of a match edit for every line.
func Edits(expected, actual string) []Edit {
	xlines, eolX := lines.Split(expected)
	ylines, eolY := lines.Split(actual)
	script := myers.Diff(xlines, ylines, config.Default.MaxCost)
	script = edit.ReconcileEOF(script, len(xlines), len(ylines), eolX, eolY)
	if len(script) == 0 {
		return nil
	}
	return exportScript(script, xlines, ylines)
}

func exportScript(script []edit.Edit, xlines, ylines []string) []Edit {
	out := make([]Edit, 0, len(script))
	for _, e := range script {
		text := ""
		switch {
		case e.S >= 0:
			text = xlines[e.S]
		case e.T >= 0:
			text = ylines[e.T]
		}
		out = append(out, Edit{Op: e.Op, X: e.S, Y: e.T, Text: text})
	}
	return out
}
