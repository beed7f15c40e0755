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

// Package hunk groups an edit script into unified-diff hunks and applies the display-level
// truncation budget.
package hunk

import (
	"slices"

	"znkr.io/textcmp/internal/edit"
)

// Hunk describes a sequence of consecutive edits together with the 0-based positions in x and y
// at which the sequence starts. Header counts are not stored, they are derived from the edits:
// the x-side count is the number of Match+Delete edits, the y-side count the number of
// Match+Insert edits.
type Hunk struct {
	PosX, PosY int
	Edits      []edit.Edit
}

// Counts returns the number of lines the hunk consumes from x and y.
func (h Hunk) Counts() (nx, ny int) {
	for _, e := range h.Edits {
		switch e.Op {
		case edit.Match:
			nx++
			ny++
		case edit.Delete:
			nx++
		case edit.Insert:
			ny++
		}
	}
	return nx, ny
}

// Build groups script into hunks with up to context matching lines before and after each run of
// changes. Two runs of changes separated by at most 2*context matches share a hunk; the matches
// in between are kept in full.
//
// n and m are the line counts of x and y; they anchor the positions of hunks that consume lines
// from only one side.
func Build(script []edit.Edit, n, m, context int) []Hunk {
	// Positions in x and y before each edit. Derived from the edit indices rather than counted,
	// because a script synthesized after the search cutoff may skip lines.
	posS := make([]int, len(script)+1)
	posT := make([]int, len(script)+1)
	posS[len(script)], posT[len(script)] = n, m
	for i := len(script) - 1; i >= 0; i-- {
		posS[i], posT[i] = posS[i+1], posT[i+1]
		if e := script[i]; e.S >= 0 {
			posS[i] = e.S
		}
		if e := script[i]; e.T >= 0 {
			posT[i] = e.T
		}
	}

	var hunks []Hunk
	open, last := -1, -1 // script indices of the current hunk start and the last change seen
	for i, e := range script {
		if e.Op == edit.Match {
			continue
		}
		if open < 0 {
			open = max(0, i-context)
		} else if i-last-1 > 2*context {
			// The gap to the previous change is too large to share a hunk: close the previous
			// hunk with its trailing context and start a new one.
			end := last + 1 + context
			hunks = append(hunks, Hunk{posS[open], posT[open], script[open:end]})
			open = i - context
		}
		last = i
	}
	if open >= 0 {
		end := min(len(script), last+1+context)
		hunks = append(hunks, Hunk{posS[open], posT[open], script[open:end]})
	}
	return hunks
}

// Truncate caps the total number of changed (deleted or inserted) lines across hunks at limit.
// Matching context lines don't count toward the budget.
//
// If the hunks are within budget they are returned unchanged. Otherwise the result contains the
// hunks up to and including the hunk in which the budget is reached, with that hunk's edits cut
// immediately after the limit-th changed line. A cut hunk left without any changed line is
// dropped.
func Truncate(hunks []Hunk, limit int) ([]Hunk, bool) {
	changed := 0
	for i, h := range hunks {
		for j, e := range h.Edits {
			if e.Op == edit.Match {
				continue
			}
			changed++
			if changed <= limit {
				continue
			}
			out := slices.Clone(hunks[:i+1])
			out[i].Edits = h.Edits[:j]
			if !hasChange(out[i].Edits) {
				out = out[:i]
			}
			return out, true
		}
	}
	return hunks, false
}

func hasChange(script []edit.Edit) bool {
	for _, e := range script {
		if e.Op != edit.Match {
			return true
		}
	}
	return false
}
