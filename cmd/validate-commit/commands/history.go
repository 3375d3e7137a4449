// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bartekus/validate-commit/cmd/validate-commit/internal/clierr"
	"github.com/bartekus/validate-commit/internal/diagnostic"
	"github.com/bartekus/validate-commit/internal/history"
	"github.com/bartekus/validate-commit/internal/projectroot"
)

// NewHistoryCommand returns the `validate-commit history` command.
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [revision-range]",
		Short: "Validate the messages of existing commits",
		Long: `Runs the commit message checks over every commit in a revision range
(default HEAD), e.g. "origin/main..HEAD" in CI. Exits non-zero when any
message is rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}

	// Flags in alphabetical order for deterministic help output
	addFormatFlag(cmd)
	cmd.Flags().Int("max-count", 0, "Limit the number of commits to check (0 = unlimited)")
	cmd.Flags().String("repo", ".", "Path inside the repository to audit")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	format, err := formatOf(cmd)
	if err != nil {
		return err
	}
	repoFlag, _ := cmd.Flags().GetString("repo")
	maxCount, _ := cmd.Flags().GetInt("max-count")

	revRange := "HEAD"
	if len(args) == 1 {
		revRange = args[0]
	}

	repoRoot, err := projectroot.Find(repoFlag)
	if err != nil {
		return fmt.Errorf("finding repo root: %w", err)
	}
	verbosef(cmd, "reading %s in %s\n", revRange, repoRoot)

	report, err := history.Analyze(cmd.Context(), history.NewGitSource(repoRoot, revRange, maxCount))
	if err != nil {
		return clierr.Wrap(clierr.ExitIO, "auditing history", err)
	}

	out := cmd.OutOrStdout()
	if format != diagnostic.FormatText {
		if err := diagnostic.Encode(out, format, report); err != nil {
			return err
		}
	} else {
		if !report.OK() {
			if _, err := fmt.Fprint(out, report.Table(), "\n"); err != nil {
				return fmt.Errorf("writing text output: %w", err)
			}
		}
		summary := color.New(color.FgGreen)
		if !report.OK() {
			summary = color.New(color.FgRed, color.Bold)
		}
		if _, err := summary.Fprintf(out, "%d of %d commit messages valid (%d bypassed)\n",
			report.Valid, report.Total, report.Bypassed); err != nil {
			return fmt.Errorf("writing text output: %w", err)
		}
	}

	if !report.OK() {
		return clierr.Reported(clierr.ExitInvalid, fmt.Errorf("%d invalid commit messages", len(report.Findings)))
	}
	return nil
}
