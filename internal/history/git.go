// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

const (
	fieldSep = "\x1f"
	// %B is the raw message; fields are unit-separated, commits NUL-terminated by -z.
	logFormat = "--format=%H%x1f%an%x1f%ae%x1f%B"
)

// GitSource reads commit messages from a git repository.
type GitSource struct {
	repoRoot string
	revRange string
	maxCount int

	mu    sync.Mutex
	cache []CommitMetadata
}

// NewGitSource creates a source over revRange (e.g. "HEAD" or "main..HEAD").
// maxCount <= 0 means no limit.
func NewGitSource(repoRoot, revRange string, maxCount int) *GitSource {
	if revRange == "" {
		revRange = "HEAD"
	}
	return &GitSource{
		repoRoot: repoRoot,
		revRange: revRange,
		maxCount: maxCount,
	}
}

// Commits returns the commits in the range, newest first, caching the result
// for the instance lifetime.
func (s *GitSource) Commits(ctx context.Context) ([]CommitMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		return s.cache, nil
	}

	args := []string{"log", "-z", logFormat}
	if s.maxCount > 0 {
		args = append(args, "--max-count="+strconv.Itoa(s.maxCount))
	}
	args = append(args, s.revRange, "--")

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.repoRoot
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(string(exitErr.Stderr)); msg != "" {
				return nil, fmt.Errorf("git log %s failed: %w: %s", s.revRange, err, msg)
			}
		}
		return nil, fmt.Errorf("git log %s failed: %w", s.revRange, err)
	}

	commits, err := parseLog(string(out))
	if err != nil {
		return nil, err
	}
	s.cache = commits
	return s.cache, nil
}

func parseLog(out string) ([]CommitMetadata, error) {
	out = strings.TrimSuffix(out, "\x00")
	if out == "" {
		return []CommitMetadata{}, nil
	}

	records := strings.Split(out, "\x00")
	commits := make([]CommitMetadata, 0, len(records))
	for _, rec := range records {
		fields := strings.SplitN(rec, fieldSep, 4)
		if len(fields) != 4 {
			return nil, fmt.Errorf("unexpected git log record %q", rec)
		}
		commits = append(commits, CommitMetadata{
			SHA:         strings.TrimPrefix(fields[0], "\n"),
			AuthorName:  fields[1],
			AuthorEmail: fields[2],
			Message:     fields[3],
		})
	}
	return commits, nil
}
