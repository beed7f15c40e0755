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

// Package textcmp compares two texts line by line and renders the differences as a unified diff,
// intended as the failure message of a test assertion.
//
// The main entry points are [Compare], which returns a [*MismatchError] carrying the diff when
// the texts differ, and [Unified], which returns the diff text directly. [Hunks] and [Edits]
// expose the underlying edit script for callers that want to post-process changes themselves.
//
// The diff is a minimal edit script (Myers' O(ND) algorithm) for all practical inputs; for
// pathological inputs (two large, wholly different texts) the search is cut off at a fixed edit
// distance and a non-minimal but bounded result is produced. Independently of that, rendered
// output is truncated after a fixed number of changed lines so that failure messages stay
// readable no matter how different the inputs are.
//
// All functions are pure and safe for concurrent use; every call works on state local to the
// call.
//
// For comparing JSON documents structurally, see [znkr.io/textcmp/jsoncmp].
package textcmp
