// Package benchmarks compares this module against other Go diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/textcmp"
)

type Impl struct {
	Name string
	Diff func(x, y string) string
}

var Impls = []Impl{
	{
		Name: "textcmp",
		Diff: func(x, y string) string {
			return textcmp.Unified(x, y)
		},
	},
	{
		Name: "go-difflib",
		Diff: func(x, y string) string {
			out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(x),
				B:        difflib.SplitLines(y),
				FromFile: "expected",
				ToFile:   "actual",
				Context:  3,
			})
			if err != nil {
				panic(err)
			}
			return out
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y string) string {
			// This function is not exactly creating a unified diff, but it's close enough to be
			// comparable.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(x, y)
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)

			var buf bytes.Buffer
			for _, diff := range diffs {
				var prefix string
				switch diff.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				case diffmatchpatch.DiffEqual:
					prefix = " "
				}
				for _, line := range strings.SplitAfter(diff.Text, "\n") {
					if line == "" {
						continue
					}
					buf.WriteString(prefix)
					buf.WriteString(line)
				}
			}
			return buf.String()
		},
	},
}
