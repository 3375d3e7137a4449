// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/bartekus/validate-commit/cmd/validate-commit/commands"
	"github.com/bartekus/validate-commit/cmd/validate-commit/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		if !clierr.IsReported(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(clierr.ExitCodeOf(err))
	}
}
