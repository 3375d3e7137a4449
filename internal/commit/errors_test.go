// SPDX-License-Identifier: AGPL-3.0-or-later

package commit

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/validate-commit/internal/testutil/golden"
)

func TestFormatError_Render(t *testing.T) {
	dir := golden.TestdataDir(t)

	tests := []struct {
		name string
		err  func() error
	}{
		{"missing_whitespace", func() error { return ValidateMessage("feat:add commit message validation") }},
		{"capitalized", func() error { return ValidateMessage("feat: Add commit message validation") }},
		{"second_line", func() error { return ValidateMessage("feat: add x\nsome body") }},
		{"empty_type", func() error { return ValidateMessage(": add x") }},
		{"parse_header_direct", func() error { _, err := ParseHeader("feet: add x"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err()
			require.Error(t, err)
			golden.Check(t, dir, tt.name, err.Error()+"\n")
		})
	}
}

func TestFormatError_Is(t *testing.T) {
	err := ValidateMessage("feet: add x")
	assert.ErrorIs(t, err, ErrInvalidCommitType)
	assert.NotErrorIs(t, err, ErrNoColumn)

	wrapped := fmt.Errorf("validating: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidCommitType)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "no-column", NoColumn.String())
	assert.Equal(t, "capitalized-first-letter", CapitalizedFirstLetter.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestSpan_String(t *testing.T) {
	s := Span{Line: "feat:add", Column: 5}
	assert.Equal(t, "feat:add\n     ^", s.String())

	s = Span{Line: "body", Column: 0}
	assert.Equal(t, "body\n^", s.String())
}

func TestIOError(t *testing.T) {
	err := &IOError{Kind: OpenFileFailed, Path: "COMMIT_EDITMSG", Err: os.ErrNotExist}
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "opening commit file COMMIT_EDITMSG")

	var ioErr *IOError
	require.True(t, errors.As(fmt.Errorf("x: %w", err), &ioErr))
	assert.Equal(t, "open-file-failed", ioErr.Kind.String())
}
