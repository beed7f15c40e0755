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
	"fmt"
	"strings"

	"znkr.io/textcmp/internal/config"
	"znkr.io/textcmp/internal/edit"
	"znkr.io/textcmp/internal/hunk"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\\ No newline at end of file\n"

// format renders hunks into unified-diff text.
//
// Hunk headers always render both the start and the count, i.e. "N,1" rather than the bare "N"
// shorthand. A side that consumes no lines renders its 0-based position directly, which is the
// line before the insertion or deletion point and 0 at the start of the text.
//
// The "\ No newline at end of file" marker is emitted directly after the last line sourced from
// a side whose input lacks the trailing newline: once per side, and once in total when a final
// context line is shared by both sides.
func format(hunks []hunk.Hunk, xlines, ylines []string, eolX, eolY bool, truncated bool, cfg config.Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", cfg.NameX, cfg.NameY)
	for _, h := range hunks {
		nx, ny := h.Counts()
		sx, sy := h.PosX, h.PosY
		if nx > 0 {
			sx++
		}
		if ny > 0 {
			sy++
		}
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", sx, nx, sy, ny)
		for _, e := range h.Edits {
			switch e.Op {
			case edit.Match:
				b.WriteString(prefixMatch)
				b.WriteString(xlines[e.S])
				b.WriteByte('\n')
				if e.S == len(xlines)-1 && !eolX || e.T == len(ylines)-1 && !eolY {
					b.WriteString(missingNewline)
				}
			case edit.Delete:
				b.WriteString(prefixDelete)
				b.WriteString(xlines[e.S])
				b.WriteByte('\n')
				if e.S == len(xlines)-1 && !eolX {
					b.WriteString(missingNewline)
				}
			case edit.Insert:
				b.WriteString(prefixInsert)
				b.WriteString(ylines[e.T])
				b.WriteByte('\n')
				if e.T == len(ylines)-1 && !eolY {
					b.WriteString(missingNewline)
				}
			}
		}
	}
	if truncated {
		fmt.Fprintf(&b, "\\ Diff truncated after %d changed lines: expected has %d lines, actual has %d lines\n",
			cfg.MaxChanged, len(xlines), len(ylines))
	}
	return b.String()
}
