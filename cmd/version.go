package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/JVenberg/CodespaceInfoCLI/internal/ui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		u := ui.New(os.Stdout, os.Stderr)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "codespaces "+Version)
		u.Keyval("commit", Commit)
		u.Keyval("built", Built)
		u.Keyval("go", runtime.Version())
	},
}
