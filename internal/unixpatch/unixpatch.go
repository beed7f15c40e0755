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

// Package unixpatch validates unified diffs by applying them with the unix patch tool.
//
// This package is only for testing.
package unixpatch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Apply applies the unified diff to orig using patch(1) and returns the patched content.
func Apply(orig, diff string) (string, error) {
	// patch invoked with an empty diff doesn't create an output file.
	if diff == "" {
		return orig, nil
	}

	dir, err := os.MkdirTemp("", "unixpatch-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	origfile := filepath.Join(dir, "orig")
	patchfile := filepath.Join(dir, "diff")
	outfile := filepath.Join(dir, "out")
	if err := os.WriteFile(origfile, []byte(orig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write orig file: %v", err)
	}
	if err := os.WriteFile(patchfile, []byte(diff), 0o644); err != nil {
		return "", fmt.Errorf("failed to write diff file: %v", err)
	}

	cmd := exec.Command("patch", "-u", "-i", patchfile, "-o", outfile, origfile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("patch failed: %v\n%s", err, out)
	}

	out, err := os.ReadFile(outfile)
	if err != nil {
		return "", fmt.Errorf("failed to read patched file: %v", err)
	}
	return string(out), nil
}
