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

package jsoncmp_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"znkr.io/textcmp"
	"znkr.io/textcmp/jsoncmp"
)

func TestCompareEqual(t *testing.T) {
	tests := []struct {
		name             string
		expected, actual string
	}{
		{
			name:     "identical",
			expected: `{"a":1,"b":2}`,
			actual:   `{"a":1,"b":2}`,
		},
		{
			name:     "formatting-differs",
			expected: `{"a":1,"b":[1,2,3]}`,
			actual:   "{\n  \"a\": 1,\n  \"b\": [1, 2, 3]\n}",
		},
		{
			name:     "surrounding-whitespace",
			expected: ` {"a":1} `,
			actual:   `{"a":1}`,
		},
		{
			name:     "scalar",
			expected: `true`,
			actual:   ` true`,
		},
		{
			name:     "nested",
			expected: `{"a":{"b":{"c":[]}}}`,
			actual:   `{ "a": { "b": { "c": [] } } }`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, jsoncmp.Compare(tt.expected, tt.actual))
		})
	}
}

func TestCompareDifferent(t *testing.T) {
	tests := []struct {
		name             string
		expected, actual string
	}{
		{
			name:     "value-differs",
			expected: `{"a":1}`,
			actual:   `{"a":2}`,
		},
		{
			name:     "key-order-is-significant",
			expected: `{"a":1,"b":2}`,
			actual:   `{"b":2,"a":1}`,
		},
		{
			name:     "numbers-compare-as-written",
			expected: `{"a":1}`,
			actual:   `{"a":1.0}`,
		},
		{
			name:     "missing-element",
			expected: `[1,2,3]`,
			actual:   `[1,3]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := jsoncmp.Compare(tt.expected, tt.actual)
			require.Error(t, err)
			var mismatch *textcmp.MismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Contains(t, mismatch.Message, "--- expected\n+++ actual\n")
		})
	}
}

func TestCompareMalformedExpected(t *testing.T) {
	err := jsoncmp.Compare(`{"a":`, `{"a":1}`)
	require.Error(t, err)
	var malformed *jsoncmp.MalformedJSONError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "malformed expected JSON")

	// A broken test must not be reported as a failed one.
	var mismatch *textcmp.MismatchError
	assert.False(t, errors.As(err, &mismatch))
}

func TestCompareMalformedActual(t *testing.T) {
	err := jsoncmp.Compare(`{"a":1}`, `{"a":`)
	require.Error(t, err)
	var mismatch *textcmp.MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, mismatch.Message, "malformed actual JSON")
}

func TestCompareActualNullOrMissing(t *testing.T) {
	for _, actual := range []string{"", "   ", "null", " null\n"} {
		t.Run("actual="+strings.TrimSpace(actual), func(t *testing.T) {
			err := jsoncmp.Compare(`{"a":1}`, actual)
			require.Error(t, err)
			var mismatch *textcmp.MismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.True(t, strings.HasPrefix(mismatch.Message, "actual is null or missing, expected:\n"))
			assert.Contains(t, mismatch.Message, `"a"`)
		})
	}
}

func TestCanonical(t *testing.T) {
	t.Run("stable-under-formatting", func(t *testing.T) {
		a, err := jsoncmp.Canonical(`{"a":1,"b":[1,2]}`)
		require.NoError(t, err)
		b, err := jsoncmp.Canonical("{\n\"a\" :1,  \"b\":[ 1,2 ]}\n")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("one-value-per-line", func(t *testing.T) {
		out, err := jsoncmp.Canonical(`{"a":1,"b":[1,2]}`)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		assert.Greater(t, len(lines), 5, "canonical form must be multiline: %q", out)
	})

	t.Run("key-order-preserved", func(t *testing.T) {
		out, err := jsoncmp.Canonical(`{"b":1,"a":2}`)
		require.NoError(t, err)
		assert.Less(t, strings.Index(out, `"b"`), strings.Index(out, `"a"`))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := jsoncmp.Canonical(`{"a":1`)
		var malformed *jsoncmp.MalformedJSONError
		require.ErrorAs(t, err, &malformed)
		assert.NotEmpty(t, malformed.Reason)
	})

	t.Run("malformed-snippet-is-bounded", func(t *testing.T) {
		doc := `{"padding before the problem": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", broken}`
		_, err := jsoncmp.Canonical(doc)
		var malformed *jsoncmp.MalformedJSONError
		require.ErrorAs(t, err, &malformed)
		assert.NotEmpty(t, malformed.Snippet)
		assert.Less(t, len(malformed.Snippet), len(doc))
	})
}
