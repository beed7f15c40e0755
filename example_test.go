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

package textcmp_test

import (
	"fmt"

	"znkr.io/textcmp"
)

func ExampleUnified() {
	x := `this paragraph
is not
changed and
barely long
enough to
create a
new hunk

this paragraph
is going to be
removed
`

	y := `this is a new paragraph
that is inserted at the top

this paragraph
is not
changed and
barely long
enough to
create a
new hunk
`
	fmt.Print(textcmp.Unified(x, y))
	// Output:
	// --- expected
	// +++ actual
	// @@ -1,3 +1,6 @@
	// +this is a new paragraph
	// +that is inserted at the top
	// +
	//  this paragraph
	//  is not
	//  changed and
	// @@ -5,7 +8,3 @@
	//  enough to
	//  create a
	//  new hunk
	// -
	// -this paragraph
	// -is going to be
	// -removed
}

func ExampleCompare() {
	err := textcmp.Compare("apple\nbanana\n", "apple\ncherry\n")
	fmt.Print(err)
	// Output:
	// --- expected
	// +++ actual
	// @@ -1,2 +1,2 @@
	//  apple
	// -banana
	// +cherry
}

func ExampleEdits() {
	for _, e := range textcmp.Edits("a\nb\nc\n", "a\nx\nc\n") {
		fmt.Println(e.Op, e.Text)
	}
	// Output:
	// Match a
	// Delete b
	// Insert x
	// Match c
}
