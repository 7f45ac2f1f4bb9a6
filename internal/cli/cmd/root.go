// Package cmd provides Cobra CLI commands for tlpui.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tlpui/internal/cli"
	"github.com/bnema/tlpui/internal/domain/build"
	"github.com/bnema/tlpui/internal/domain/entity"
)

// Exit codes returned by Execute.
const (
	exitError       = 1
	exitFormatError = 2
)

var (
	app       *cli.App
	buildInfo build.Info
	tlpFile   string
	rootCmd   = &cobra.Command{
		Use:   "tlpui",
		Short: "Edit the TLP power management configuration",
		Long: `tlpui - a graphical and command-line editor for the TLP configuration.

Settings are grouped in categories and edited with controls that match their
type. Only changed lines are written back; comments and layout are kept.

Run without a subcommand to open the window, or use the subcommands to
inspect and change settings from the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				ConfigFile:  tlpFile,
				LogToStderr: !cmd.HasParent() || cmd.Name() == "gui",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runGUI,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&tlpFile, "file", "f", "", "TLP config file to edit (default from app config)")
}

// Execute runs the root command and exits with a non-zero code on failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exit *exitCodeError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	if errors.Is(err, entity.ErrFileFormat) {
		os.Exit(exitFormatError)
	}
	os.Exit(exitError)
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// exitCodeError ends the process with code after the command already
// reported the problem.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
