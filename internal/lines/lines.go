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

// Package lines splits text into a sequence of lines plus an explicit trailing-newline flag.
//
// Keeping the flag separate from the line contents lets the rest of the module compare lines by
// content alone and deal with the "\ No newline at end of file" case explicitly instead of
// encoding it as an empty trailing element.
package lines

import "strings"

// Split splits s on '\n' and returns the lines without their newline character together with a
// flag reporting whether s ended in a newline.
//
// Only '\n' terminates a line; '\r' is ordinary content. Callers that want to normalize "\r\n"
// must do so before calling Split.
//
// An empty input yields no lines and eol = true: an empty sequence has no last line that could be
// missing its newline.
func Split(s string) (out []string, eol bool) {
	if s == "" {
		return nil, true
	}
	out = strings.Split(s, "\n")
	eol = s[len(s)-1] == '\n'
	if eol {
		// Split produces one extra empty element after the final '\n'. It doesn't count as a
		// line.
		out = out[:len(out)-1]
	}
	return out, eol
}

// Join is the inverse of Split: it reassembles the original text from the lines and the
// trailing-newline flag.
func Join(lines []string, eol bool) string {
	if len(lines) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
	}
	if eol {
		sb.WriteByte('\n')
	}
	return sb.String()
}
