package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/cli"
	"github.com/bnema/tlpui/internal/cli/styles"
	"github.com/bnema/tlpui/internal/domain/entity"
)

var (
	showCategory     string
	showChangedOnly  bool
	showDescriptions bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings grouped by category",
	Long: `Print every setting of the TLP config file that a category lists.

Settings commented out in the file are shown dimmed. With --changed-only only
the settings set in the file are listed, i.e. those overriding TLP's built-in
defaults.

Examples:
  tlpui show                       # All categories
  tlpui show --category battery    # Categories whose label contains "battery"
  tlpui show --changed-only -d     # Active settings with descriptions`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showCategory, "category", "c", "", "only categories whose label contains this text")
	showCmd.Flags().BoolVar(&showChangedOnly, "changed-only", false, "only settings active in the file")
	showCmd.Flags().BoolVarP(&showDescriptions, "descriptions", "d", false, "print item descriptions")
}

func runShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	loaded, err := loadFile(app)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := styles.NewEntriesRenderer(app.Theme, styles.Width(out))

	if warnings := renderer.RenderWarnings(loaded.Warnings); warnings != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), warnings)
	}

	descriptions := showDescriptions || app.Config.UI.ShowDescriptions
	shown := 0
	for _, view := range loaded.Views {
		if !matchesCategory(view.Label, showCategory) {
			continue
		}
		if showChangedOnly {
			view = activeOnly(view)
			if len(view.Items) == 0 {
				continue
			}
		}
		if shown > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, renderer.RenderCategory(view, descriptions, false))
		shown++
	}

	if shown == 0 && showCategory != "" {
		return fmt.Errorf("no category matches %q", showCategory)
	}
	return nil
}

// loadFile loads app.Path with the category views.
func loadFile(app *cli.App) (*usecase.LoadConfigOutput, error) {
	out, err := app.LoadUC.Execute(app.Ctx(), usecase.LoadConfigInput{Path: app.Path})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("TLP config file %s does not exist", app.Path)
		}
		return nil, err
	}
	return out, nil
}

func matchesCategory(label, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(strings.TrimSpace(filter)))
}

// activeOnly keeps the items whose entry is set in the file.
func activeOnly(view entity.CategoryView) entity.CategoryView {
	items := make([]entity.ItemView, 0, len(view.Items))
	for _, item := range view.Items {
		if item.Entry.Active {
			items = append(items, item)
		}
	}
	view.Items = items
	return view
}
