package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tlpui/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		theme := styles.NewPlainTheme()
		if styles.IsInteractive(cmd.OutOrStdout()) {
			theme = styles.NewTheme()
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.RenderVersion(theme, buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
