// SPDX-License-Identifier: AGPL-3.0-or-later
package projection

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWrite(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "hooks", "commit-msg")
	content := []byte("#!/bin/sh\nexit 0\n")

	if err := AtomicWrite(target, content, 0o755); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("got %q, want %q", got, content)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("expected executable file, got mode %v", info.Mode())
	}

	entries, err := os.ReadDir(filepath.Dir(target))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temp file to be cleaned up, found %d entries", len(entries))
	}
}

func TestRenderTable(t *testing.T) {
	got := RenderTable([]string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}})
	want := "| A | B |\n| --- | --- |\n| 1 | 2 |\n| 3 | 4 |\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = RenderTable([]string{"Only"}, nil)
	want = "| Only |\n| --- |\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
