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

// Package myers contains an implementation of Myers' algorithm.
//
// The implementation is the forward O(ND) greedy search from section 2 of the paper with a full
// trace of the search kept for backtracking, plus a hard bound on the edit distance that keeps
// time and memory finite for pathological inputs.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to
// y. Every vertex (s, t) corresponds to a state where the first s lines of x and the first t
// lines of y have been consumed. A step to the right (s+1) deletes a line from x, a step down
// (t+1) inserts a line from y, and when x[s] == y[t] a free diagonal step consumes one matching
// line from both.
//
// An optimal diff (fewest insertions and deletions) is a minimum-cost path from (0, 0) to (n, m)
// where horizontal and vertical edges cost 1 and diagonal edges cost 0.
//
// We use s and t for the horizontal and vertical coordinates and k = s - t for diagonals. Let a
// d-path be a path with exactly d non-diagonal edges. Myers' central observation is that the
// furthest reaching d-path on diagonal k can be constructed greedily from the furthest reaching
// (d-1)-paths on the neighboring diagonals k-1 and k+1: take whichever of the two reaches
// further, make the corresponding horizontal or vertical step, then follow diagonal edges as
// long as the lines match. Iterating d = 0, 1, 2, ... until some furthest reaching path arrives
// at (n, m) finds an optimal path in O((N+M)D) time.
//
// The furthest reaching endpoints live in a v-array indexed by diagonal; only the s-coordinate
// is stored since t = s - k. This implementation snapshots the live window of the v-array at
// every d, and when the search terminates it walks the snapshots backwards to reconstruct the
// path: at each step the same neighbor comparison as in the forward pass decides whether the
// d-th edit was a deletion or an insertion. Edits are accumulated in reverse order and reversed
// once at the end.
//
// # Cutoff
//
// Keeping a snapshot per d makes the working memory proportional to D². To bound both memory and
// time for inputs with very many differences (e.g. two large wholly-different texts), the search
// stops once d exceeds a fixed ceiling. The trace is incomplete at that point, so no backtracking
// is attempted; instead a degenerate script is synthesized that deletes a bounded prefix of x and
// inserts a bounded prefix of y. The result is not a minimal diff: it trades optimality for
// bounded cost, like the TOO_EXPENSIVE heuristic in GNU diff.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
