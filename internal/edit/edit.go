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

// Package edit contains the edit-script representation shared by the myers engine and the hunk
// builder.
//
// A script is an ordered list of edits whose S and T indices are monotonically non-decreasing. A
// Match consumes one line from both sides, a Delete one line from x, an Insert one line from y.
package edit

// Op describes a single edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // Both lines are identical.
	Delete           // A deletion of a line from x.
	Insert           // An insertion of a line from y.
)

// Edit is one step of an edit script.
//
//   - For Match, S and T index the matching lines in x and y.
//   - For Delete, S indexes the deleted line in x and T is -1.
//   - For Insert, T indexes the inserted line in y and S is -1.
type Edit struct {
	Op   Op
	S, T int
}

// ReconcileEOF adjusts a script for inputs that disagree on the presence of a trailing newline.
//
// The script is computed on line contents alone, so two final lines that are textually identical
// match even when only one of them is terminated by a newline in the original text. Those lines
// are observably different artifacts and must be reported as a change. If the script ends in a
// Match of both final lines and exactly one of eolX, eolY is false, that Match is rewritten into
// a Delete followed by an Insert so that the formatter can attach a missing-newline marker to
// each side independently.
//
// n and m are the line counts of x and y. Empty sequences never carry a missing-newline marker
// and are left alone.
func ReconcileEOF(script []Edit, n, m int, eolX, eolY bool) []Edit {
	if len(script) == 0 || n == 0 || m == 0 || eolX == eolY {
		return script
	}
	last := script[len(script)-1]
	if last.Op != Match || last.S != n-1 || last.T != m-1 {
		return script
	}
	script = script[:len(script)-1]
	script = append(script,
		Edit{Op: Delete, S: n - 1, T: -1},
		Edit{Op: Insert, S: -1, T: m - 1},
	)
	return script
}
