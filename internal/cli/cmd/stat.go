package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/cli/styles"
	"github.com/bnema/tlpui/internal/domain/entity"
)

var statSection string

var statCmd = &cobra.Command{
	Use:   "stat",
	Short: "Show the TLP status report",
	Long: `Run tlp-stat (or the configured command) and print its report.

Examples:
  tlpui stat                       # Full report
  tlpui stat --section battery     # Sections whose title contains "battery"`,
	Args: cobra.NoArgs,
	RunE: runStat,
}

func init() {
	rootCmd.AddCommand(statCmd)
	statCmd.Flags().StringVarP(&statSection, "section", "s", "", "only sections whose title contains this text")
}

func runStat(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	result, err := app.StatUC.Execute(app.Ctx(), usecase.GetStatInput{Section: statSection})
	if err != nil {
		if errors.Is(err, entity.ErrStatUnavailable) {
			return fmt.Errorf("%w: install TLP or set tlp.stat_command", err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if len(result.Report.Sections) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No matching sections"))
		return nil
	}
	fmt.Fprintln(out, styles.RenderStatReport(app.Theme, result.Report))
	return nil
}
