// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/validate-commit/internal/hookinstall"
	"github.com/bartekus/validate-commit/internal/projectroot"
)

// NewHookCommand returns the `validate-commit hook` command group.
func NewHookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage the git commit-msg hook",
	}

	install := &cobra.Command{
		Use:   "install",
		Short: "Install validate-commit as the repository's commit-msg hook",
		Args:  cobra.NoArgs,
		RunE:  runHookInstall,
	}
	install.Flags().String("binary", "", "Command the hook runs (default: validate-commit on PATH)")
	install.Flags().Bool("force", false, "Replace an existing commit-msg hook")
	install.Flags().String("repo", ".", "Path inside the repository")

	cmd.AddCommand(install)
	return cmd
}

func runHookInstall(cmd *cobra.Command, args []string) error {
	binary, _ := cmd.Flags().GetString("binary")
	force, _ := cmd.Flags().GetBool("force")
	repoFlag, _ := cmd.Flags().GetString("repo")

	repoRoot, err := projectroot.Find(repoFlag)
	if err != nil {
		return fmt.Errorf("finding repo root: %w", err)
	}

	path, err := hookinstall.Install(repoRoot, hookinstall.Options{Binary: binary, Force: force})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "installed commit-msg hook at %s\n", path)
	return nil
}
