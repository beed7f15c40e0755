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

package myers

import (
	"math"
	"slices"

	"znkr.io/textcmp/internal/edit"
)

// Diff compares the lines in x and y and returns an edit script that transforms x into y.
//
// The script covers every line of both inputs: matching lines appear as Match edits, so the
// result has one edit per line pair plus one per deletion and insertion. Line equality is exact
// string equality.
//
// maxCost bounds the edit distance searched. If the bound is exceeded the returned script is not
// minimal, see the package documentation.
func Diff(x, y []string, maxCost int) []edit.Edit {
	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	script := make([]edit.Edit, 0, len(x)+len(y))
	for s := 0; s < smin; s++ {
		script = append(script, edit.Edit{Op: edit.Match, S: s, T: s})
	}
	script = append(script, search(x[smin:smax], y[tmin:tmax], smin, tmin, maxCost)...)
	for i := 0; smax+i < len(x); i++ {
		script = append(script, edit.Edit{Op: edit.Match, S: smax + i, T: tmax + i})
	}
	return script
}

// search finds an edit script for the middle part of the inputs, that is x and y must not have a
// common prefix or a common suffix. soff and toff translate indices in x and y back to indices in
// the original inputs.
func search(x, y []string, soff, toff, maxCost int) []edit.Edit {
	n, m := len(x), len(y)

	// Handle trivial cases without doing anything extra.
	switch {
	case n == 0 && m == 0:
		return nil
	case n == 0:
		script := make([]edit.Edit, 0, m)
		for t := range m {
			script = append(script, edit.Edit{Op: edit.Insert, S: -1, T: toff + t})
		}
		return script
	case m == 0:
		script := make([]edit.Edit, 0, n)
		for s := range n {
			script = append(script, edit.Edit{Op: edit.Delete, S: soff + s, T: -1})
		}
		return script
	}

	// The v-array stores the furthest reaching endpoint of a d-path in diagonal k in v[v0+k]
	// where v0 is the offset that translates k in [-m, n] to a non-negative index. The endpoints
	// only store the s-coordinate since t = s - k. The two extra border elements on each side
	// hold sentinels so that the k-loop can read v[v0+k±1] without bounds checks.
	v0 := n + m + 1
	v := make([]int, 2*(n+m)+3)

	// Bounds for k. Since t = s - k, we can determine the min and max for k using: k = s - t.
	kmin, kmax := -m, n

	// trace[d] is the window v[v0-d-1:v0+d+2] as it was at the start of iteration d, i.e. it
	// holds the furthest reaching (d-1)-path endpoints plus the border sentinels. That's
	// everything backtrack needs to redo the forward pass's move decisions in reverse.
	// Snapshotting only the live window keeps the trace at O(d²) instead of O(d·(n+m)).
	trace := make([][]int, 1, min(maxCost, n+m)+1)
	trace[0] = slices.Clone(v[v0-1 : v0+2]) // placeholder so that trace[d] lines up with d

	// Since search is not called with a common prefix, there is no 0-path and the d=0 iteration
	// would produce the trivial result below. Consequently, we can start at d=1.
	v[v0] = 0
	fmin, fmax := 0, 0
	for d := 1; d <= min(maxCost, n+m); d++ {
		// Determine which diagonals k to search. Originally that's k = [-d, d] in steps of 2,
		// but that would move outside the edit grid. Instead the bounds are widened only while
		// they stay inside the grid; a widening step initializes the border cell with a sentinel
		// so that the k-loop below can handle the grid borders with the same logic as any other
		// diagonal.
		if fmin > kmin {
			fmin--
			v[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			v[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}

		trace = append(trace, slices.Clone(v[v0-d-1:v0+d+2]))

		for k := fmin; k <= fmax; k += 2 {
			// The furthest reaching d-path on diagonal k extends the further reaching of the
			// (d-1)-paths on diagonals k±1: from k+1 via a vertical edge (insert), from k-1 via
			// a horizontal edge (delete). Ties prefer deletions.
			var s int
			if v[v0+k-1] < v[v0+k+1] {
				s = v[v0+k+1]
			} else {
				s = v[v0+k-1] + 1
			}
			t := s - k

			// Then follow the diagonal as long as possible.
			for s < n && t < m && x[s] == y[t] {
				s++
				t++
			}
			v[v0+k] = s

			if s >= n && t >= m {
				return backtrack(trace, n, m, soff, toff)
			}
		}
	}

	// The ceiling was hit and the trace is incomplete: synthesize a degenerate script instead of
	// backtracking. This trades diff minimality for bounded time and memory on pathological
	// inputs.
	nd := min(n, maxCost/2)
	ni := min(m, maxCost-nd)
	script := make([]edit.Edit, 0, nd+ni)
	for s := range nd {
		script = append(script, edit.Edit{Op: edit.Delete, S: soff + s, T: -1})
	}
	for t := range ni {
		script = append(script, edit.Edit{Op: edit.Insert, S: -1, T: toff + t})
	}
	return script
}

// backtrack walks the snapshots from the terminal d down to 1 and reconstructs the path from
// (0, 0) to (n, m). The script is accumulated in reverse and reversed once at the end.
func backtrack(trace [][]int, n, m, soff, toff int) []edit.Edit {
	var script []edit.Edit
	s, t := n, m
	for d := len(trace) - 1; d > 0; d-- {
		v := trace[d]
		w := d + 1 // translates k to an index into the window snapshot
		k := s - t

		// Redo the forward pass's decision: did the d-th edit extend the (d-1)-path on k+1 (an
		// insertion) or on k-1 (a deletion)? The border sentinels recorded in the snapshot make
		// this the exact comparison the forward pass made.
		var pk int
		if v[w+k-1] < v[w+k+1] {
			pk = k + 1
		} else {
			pk = k - 1
		}
		ps := v[w+pk]
		pt := ps - pk

		// Everything between the predecessor's endpoint and (s, t) is diagonal.
		for s > ps && t > pt {
			script = append(script, edit.Edit{Op: edit.Match, S: soff + s - 1, T: toff + t - 1})
			s--
			t--
		}
		if pk == k+1 {
			script = append(script, edit.Edit{Op: edit.Insert, S: -1, T: toff + pt})
		} else {
			script = append(script, edit.Edit{Op: edit.Delete, S: soff + ps, T: -1})
		}
		s, t = ps, pt
	}

	slices.Reverse(script)
	return script
}
