package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/cli"
	"github.com/bnema/tlpui/internal/cli/styles"
	"github.com/bnema/tlpui/internal/infrastructure/config"
)

var configYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tlpui configuration",
	Long:  `View configuration status and migrate to add new default settings.`,
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show config file status and migration availability",
	Long: `Display the app config path, the TLP file being edited and the history
database, and check if any new settings are available.`,
	Args: cobra.NoArgs,
	RunE: runConfigStatus,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to config file",
	Long: `Compares your config file with available defaults and adds any missing settings.

Existing settings are never modified - only missing keys are added with default values.`,
	Args: cobra.NoArgs,
	RunE: runConfigMigrate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configStatusCmd)
	configCmd.AddCommand(configMigrateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configMigrateCmd.Flags().BoolVarP(&configYes, "yes", "y", false, "skip confirmation prompt")
}

// runConfigStatus shows file paths and migration status.
func runConfigStatus(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)

	historyFile := "disabled"
	if app.Config.History.Enabled {
		historyFile = app.Config.History.Path
	}
	fmt.Fprint(out, renderer.RenderPaths(app.Path, historyFile, app.Store.Writable(app.Path)))

	configFile, ok := existingConfigFile(out, renderer)
	if !ok {
		return nil
	}

	result, err := app.MigrateUC.Check(app.Ctx(), usecase.CheckConfigMigrationInput{})
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}

	if len(result.UnknownKeys) > 0 {
		fmt.Fprintln(out, renderer.RenderUnknownKeys(result.UnknownKeys))
	}
	if !result.NeedsMigration {
		fmt.Fprintln(out, renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(configFile, len(result.MissingKeys)))
	fmt.Fprintln(out, renderer.RenderMigrateHint())
	return nil
}

// runConfigMigrate runs the migration with optional confirmation.
func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, ok := existingConfigFile(out, renderer)
	if !ok {
		return nil
	}

	result, err := app.MigrateUC.Check(app.Ctx(), usecase.CheckConfigMigrationInput{})
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if !result.NeedsMigration {
		fmt.Fprintln(out, renderer.RenderUpToDate(configFile))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderConfigInfo(configFile, len(result.MissingKeys)))
	fmt.Fprintln(out, renderer.RenderMissingKeys(result.MissingKeys))

	if !configYes {
		confirmed, confirmErr := confirmMigration(cmd, app)
		if confirmErr != nil {
			return confirmErr
		}
		if !confirmed {
			fmt.Fprintln(out, app.Theme.Subtle.Render("Canceled"))
			return nil
		}
	}

	migrated, err := app.MigrateUC.Execute(app.Ctx(), usecase.MigrateConfigInput{})
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if len(migrated.AddedKeys) > 0 {
		fmt.Fprintln(out, renderer.RenderMigrationSuccess(len(migrated.AddedKeys), migrated.ConfigFile))
	}
	return nil
}

func confirmMigration(cmd *cobra.Command, app *cli.App) (bool, error) {
	if !styles.IsInteractive(os.Stdin) || !styles.IsInteractive(cmd.OutOrStdout()) {
		return false, errors.New("refusing to migrate without a terminal, pass --yes to confirm")
	}
	return styles.Confirm(app.Theme, "Add these settings with default values?", cmd.InOrStdin(), cmd.OutOrStdout())
}

// existingConfigFile returns the app config path, printing a notice when it
// is missing.
func existingConfigFile(out io.Writer, renderer *styles.ConfigRenderer) (string, bool) {
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return "", false
	}
	if _, statErr := os.Stat(configFile); errors.Is(statErr, fs.ErrNotExist) {
		fmt.Fprintln(out, renderer.RenderNoConfigFile(configFile))
		return "", false
	}
	return configFile, true
}
