package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/cli/styles"
)

var (
	historyLimit int
	historyName  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently saved changes",
	Long: `List the changes tlpui saved, newest first.

Examples:
  tlpui history                      # Latest changes
  tlpui history --limit 50
  tlpui history --name TLP_ENABLE    # Changes of one setting`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of records (default from app config)")
	historyCmd.Flags().StringVar(&historyName, "name", "", "only changes of this setting")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if app.HistoryUC == nil {
		return errors.New("history is disabled, set history.enabled in the app config")
	}

	limit := historyLimit
	if limit <= 0 {
		limit = app.Config.History.Limit
	}

	result, err := app.HistoryUC.Execute(app.Ctx(), usecase.ListHistoryInput{Name: historyName, Limit: limit})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(result.Records) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No saved changes yet"))
		return nil
	}
	fmt.Fprintln(out, styles.RenderHistory(app.Theme, result.Records))
	return nil
}
