// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hookinstall installs validate-commit as a git commit-msg hook.
package hookinstall

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bartekus/validate-commit/internal/projection"
	"github.com/bartekus/validate-commit/internal/projectroot"
)

const (
	hookName      = "commit-msg"
	defaultBinary = "validate-commit"
)

// ErrHookExists is returned when a commit-msg hook is present and Force is unset.
var ErrHookExists = errors.New("commit-msg hook already exists")

// Options controls Install.
type Options struct {
	// Binary is the command the hook runs; defaults to "validate-commit" on PATH.
	Binary string
	Force  bool
}

// Script returns the hook body invoking binary on the message file.
func Script(binary string) string {
	return "#!/bin/sh\n" +
		"# Installed by validate-commit.\n" +
		"exec " + shellQuote(binary) + " \"$1\"\n"
}

// Install writes the commit-msg hook of the repository rooted at repoRoot and
// returns its path.
func Install(repoRoot string, opts Options) (string, error) {
	gitDir, err := projectroot.GitDir(repoRoot)
	if err != nil {
		return "", err
	}
	path := filepath.Join(gitDir, "hooks", hookName)

	if !opts.Force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%s: %w (use --force to replace it)", path, ErrHookExists)
		}
	}

	binary := opts.Binary
	if binary == "" {
		binary = defaultBinary
	}
	if err := projection.AtomicWrite(path, []byte(Script(binary)), 0o755); err != nil {
		return "", fmt.Errorf("writing %s hook: %w", hookName, err)
	}
	return path, nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
