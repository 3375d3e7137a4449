// SPDX-License-Identifier: AGPL-3.0-or-later

/*
validate-commit - validate-commit checks commit messages against the conventional commit header convention.
It parses the header line, applies the message rules, and reports the exact line and column of the first violation.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bartekus/validate-commit/cmd/validate-commit/internal/clierr"
	"github.com/bartekus/validate-commit/internal/commit"
	"github.com/bartekus/validate-commit/internal/diagnostic"
)

// NewRootCmd constructs the validate-commit root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("VALIDATE_COMMIT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:   "validate-commit [flags] <commit-msg-file>",
		Short: "Validate a commit message against the conventional commit format",
		Long: `Validates the commit message stored in <commit-msg-file> (use "-" for stdin).

The header must read "type(scope): subject" where type is one of
feat, fix, docs, style, refactor, perf, test or chore. The second line must be
empty, no line may exceed 100 characters and the subject must not start with
an uppercase letter. Lines starting with '#' are ignored; messages starting
with "Merge " or "WIP" are accepted as is.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
		RunE: runCheck,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output (NO_COLOR is honored too)")
	addFormatFlag(cmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of validate-commit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "validate-commit version %s\n", version)
		},
	})
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewHookCommand())

	return cmd
}

// runCheck validates a single commit message file.
func runCheck(cmd *cobra.Command, args []string) error {
	format, err := formatOf(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	verbosef(cmd, "checking %s\n", path)

	var text string
	if path == "-" {
		text, err = commit.ReadMessage(cmd.InOrStdin(), "stdin")
	} else {
		text, err = commit.ReadFile(path)
	}
	verr := err
	if verr == nil {
		verr = commit.ValidateMessage(text)
	}

	if format != diagnostic.FormatText {
		if err := diagnostic.Encode(cmd.OutOrStdout(), format, diagnostic.FromError(verr)); err != nil {
			return err
		}
	} else if verr != nil {
		if err := diagnostic.WriteText(cmd.ErrOrStderr(), verr); err != nil {
			return fmt.Errorf("writing diagnostic: %w", err)
		}
	}

	if verr == nil {
		if n := commit.DroppedLines(text); n > 0 {
			verbosef(cmd, "dropped %d comment lines\n", n)
		}
		if commit.Bypassed(text) {
			verbosef(cmd, "merge or WIP message, checks skipped\n")
		}
		verbosef(cmd, "%s: ok\n", path)
		return nil
	}

	var ioErr *commit.IOError
	if errors.As(verr, &ioErr) {
		return clierr.Reported(clierr.ExitIO, verr)
	}
	return clierr.Reported(clierr.ExitInvalid, verr)
}

// addFormatFlag registers --format on the commands that print reports.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "text", "Output format: text (default), json or yaml")
}

func formatOf(cmd *cobra.Command) (diagnostic.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	return diagnostic.ParseFormat(s)
}

func verbosef(cmd *cobra.Command, format string, args ...any) {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
	}
}
