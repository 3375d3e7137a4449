// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a test helper that implements Source without shelling out.
type fakeSource struct {
	commits []CommitMetadata
	err     error
}

func (f fakeSource) Commits(context.Context) ([]CommitMetadata, error) {
	return f.commits, f.err
}

func TestAnalyze(t *testing.T) {
	src := fakeSource{commits: []CommitMetadata{
		{SHA: "aaaaaaaaaaaa", Message: "feat: add parser\n", AuthorName: "Ada"},
		{SHA: "bbbbbbbbbbbb", Message: "Merge branch 'main'\n", AuthorName: "Ada"},
		{SHA: "cccccccccccc", Message: "feat:add x\n\nbody\n", AuthorName: "Bob"},
		{SHA: "dddddddddddd", Message: "fix: Handle | pipes\n", AuthorName: "Bob"},
		{SHA: "eeeeeeeeeeee", Message: "docs: add readme\nno blank line\n", AuthorName: "Eve"},
	}}

	report, err := Analyze(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 1, report.Bypassed)
	assert.False(t, report.OK())
	require.Len(t, report.Findings, 3)

	f := report.Findings[0]
	assert.Equal(t, "cccccccccccc", f.SHA)
	assert.Equal(t, "Bob", f.Author)
	assert.Equal(t, "feat:add x", f.Subject)
	assert.Equal(t, "missing-whitespace", f.Kind)
	assert.Equal(t, 1, f.Line)
	require.NotNil(t, f.Column)
	assert.Equal(t, 5, *f.Column)

	assert.Equal(t, "capitalized-first-letter", report.Findings[1].Kind)
	assert.Equal(t, "non-empty-second-line", report.Findings[2].Kind)
	assert.Equal(t, 2, report.Findings[2].Line)
}

func TestAnalyze_AllValid(t *testing.T) {
	report, err := Analyze(context.Background(), fakeSource{commits: []CommitMetadata{
		{SHA: "a", Message: "chore: tidy"},
	}})
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.NotNil(t, report.Findings)
}

func TestAnalyze_SourceError(t *testing.T) {
	_, err := Analyze(context.Background(), fakeSource{err: errors.New("no git")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading commit history: no git")
}

func TestReport_Table(t *testing.T) {
	report, err := Analyze(context.Background(), fakeSource{commits: []CommitMetadata{
		{SHA: "0123456789abcdef", Message: "feat:add x"},
		{SHA: "fedcba9876543210", Message: ": a | b"},
	}})
	require.NoError(t, err)

	want := "| Commit | Line | Column | Kind | Subject |\n" +
		"| --- | --- | --- | --- | --- |\n" +
		"| 01234567 | 1 | 5 | missing-whitespace | feat:add x |\n" +
		"| fedcba98 | 0 | - | empty-commit-type | : a \\| b |\n"
	assert.Equal(t, want, report.Table())
}

func TestParseLog(t *testing.T) {
	out := "abc\x1fAda\x1fada@example.com\x1ffeat: add x\n\nbody\n\x00" +
		"def\x1fBob\x1fbob@example.com\x1ffix: y\n\x00"

	commits, err := parseLog(out)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, CommitMetadata{SHA: "abc", AuthorName: "Ada", AuthorEmail: "ada@example.com", Message: "feat: add x\n\nbody\n"}, commits[0])
	assert.Equal(t, "def", commits[1].SHA)

	commits, err = parseLog("")
	require.NoError(t, err)
	assert.Empty(t, commits)

	_, err = parseLog("garbage\x00")
	assert.Error(t, err)
}
