package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tlpui/internal/infrastructure/tlpconf"
	"github.com/bnema/tlpui/internal/ui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the editor window",
	Long: `Open the GTK4 editor window on the TLP config file.

Examples:
  tlpui gui                        # Edit the configured file
  tlpui gui --file ./tlp.conf      # Edit another file`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	deps := &ui.Dependencies{
		Ctx:           app.Ctx(),
		Config:        app.Config,
		ConfigManager: app.ConfigManager,
		Path:          app.Path,
		LoadUC:        app.LoadUC,
		SaveUC:        app.SaveUC,
		StatUC:        app.StatUC,
	}
	if app.Config.TLP.WatchConfigFile {
		deps.Watcher = tlpconf.NewWatcher()
	}

	gui, err := ui.New(deps)
	if err != nil {
		return err
	}

	// GTK parses its own flags; only the program name is forwarded.
	if code := gui.Run(app.Ctx(), os.Args[:1]); code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}
