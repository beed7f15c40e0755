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

// Package jsoncmp compares two JSON documents structurally.
//
// Both documents are first canonicalized into pretty-printed text with stable 2-space
// indentation and original key order, then compared line by line with
// [znkr.io/textcmp.Compare]. Because canonicalization is purely textual, key order is
// significant and numbers are compared as written.
//
// The two sides are treated asymmetrically on parse failure: the expected document is
// caller-controlled, so a malformed expected document is a programming error and reported as a
// [*MalformedJSONError]; the actual document is runtime output, so a malformed actual document
// is a test failure and reported as a [*textcmp.MismatchError].
package jsoncmp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"znkr.io/textcmp"
)

// MalformedJSONError signals that a caller-supplied document failed to parse. In contrast to a
// [*textcmp.MismatchError] it indicates a broken test, not a failed one.
type MalformedJSONError struct {
	Reason  string // the parser's own message
	Snippet string // excerpt of the document around the offending position
}

func (e *MalformedJSONError) Error() string {
	if e.Snippet == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s near %q", e.Reason, e.Snippet)
}

// Compare compares expected and actual as JSON documents. It returns nil if both canonicalize to
// the same text.
//
// A malformed expected document yields a [*MalformedJSONError]. An actual document that is
// empty or the JSON literal null yields a [*textcmp.MismatchError] with a short message instead
// of a diff: a diff against nothing carries no information. A malformed actual document yields a
// [*textcmp.MismatchError] carrying the parse failure. Otherwise the result is that of
// [textcmp.Compare] on the canonical texts.
//
// The following options are supported: [textcmp.Context], [textcmp.Names]
func Compare(expected, actual string, opts ...textcmp.Option) error {
	want, err := Canonical(expected)
	if err != nil {
		return fmt.Errorf("malformed expected JSON: %w", err)
	}
	if t := strings.TrimSpace(actual); t == "" || t == "null" {
		return &textcmp.MismatchError{
			Message: fmt.Sprintf("actual is null or missing, expected:\n%s", want),
		}
	}
	got, err := Canonical(actual)
	if err != nil {
		return &textcmp.MismatchError{
			Message: fmt.Sprintf("malformed actual JSON: %v", err),
		}
	}
	return textcmp.Compare(want, got, opts...)
}

// Canonical returns the canonical text form of doc: 2-space indentation, one value per line,
// original key order. Two JSON documents are structurally equal exactly when their canonical
// forms are identical.
func Canonical(doc string) (string, error) {
	if !gjson.Valid(doc) {
		return "", malformed(doc)
	}
	// Width 1 forces every non-empty object and array onto multiple lines, which keeps the
	// canonical form stable under formatting of the input and gives the line diff one value per
	// line to work with.
	out := pretty.PrettyOptions([]byte(doc), &pretty.Options{Width: 1, Indent: "  "})
	return string(out), nil
}

// malformed builds the error for an invalid document. gjson only reports validity, so the reason
// and position come from encoding/json.
func malformed(doc string) *MalformedJSONError {
	var v any
	err := json.Unmarshal([]byte(doc), &v)
	if err == nil {
		// encoding/json is more lenient than gjson here; there's no position to point at.
		return &MalformedJSONError{Reason: "invalid JSON document"}
	}
	offset := len(doc)
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		offset = int(serr.Offset)
	}
	return &MalformedJSONError{Reason: err.Error(), Snippet: excerpt(doc, offset)}
}

func excerpt(doc string, offset int) string {
	const radius = 20
	lo := max(0, offset-radius)
	hi := min(len(doc), offset+radius)
	s := doc[lo:hi]
	if lo > 0 {
		s = "..." + s
	}
	if hi < len(doc) {
		s += "..."
	}
	return s
}
