package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tlpui/internal/application/usecase"
	"github.com/bnema/tlpui/internal/cli/styles"
)

var (
	setEnable  []string
	setDisable []string
	setYes     bool
	setDryRun  bool
)

var setCmd = &cobra.Command{
	Use:   "set [NAME=VALUE...]",
	Short: "Change settings and write them to the TLP config file",
	Long: `Change one or more settings and save them.

Values are checked against the category that lists the setting. Assigning a
value to a commented-out setting enables it. Only the affected lines are
rewritten.

Examples:
  tlpui set TLP_ENABLE=1
  tlpui set CPU_SCALING_GOVERNOR_ON_AC=performance --yes
  tlpui set --disable USB_AUTOSUSPEND
  tlpui set "USB_DENYLIST=1111:2222 3333:4444" --dry-run`,
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringSliceVar(&setEnable, "enable", nil, "uncomment a setting (repeatable)")
	setCmd.Flags().StringSliceVar(&setDisable, "disable", nil, "comment out a setting (repeatable)")
	setCmd.Flags().BoolVarP(&setYes, "yes", "y", false, "skip confirmation prompt")
	setCmd.Flags().BoolVar(&setDryRun, "dry-run", false, "print the changes without saving")
}

func runSet(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if len(args) == 0 && len(setEnable) == 0 && len(setDisable) == 0 {
		return errors.New("nothing to change: pass NAME=VALUE, --enable or --disable")
	}

	loaded, err := loadFile(app)
	if err != nil {
		return err
	}

	applied, err := app.ApplyUC.Execute(app.Ctx(), usecase.ApplyEditsInput{
		Registry:    loaded.Registry,
		Categories:  loaded.Categories,
		Assignments: args,
		Enable:      setEnable,
		Disable:     setDisable,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderer := styles.NewEntriesRenderer(app.Theme, styles.Width(out))
	fmt.Fprintln(out, renderer.RenderChanges(applied.Changes))
	if len(applied.Changes) == 0 {
		return nil
	}

	if setDryRun {
		for _, view := range loaded.Views {
			if section := renderer.RenderCategory(view, false, true); section != "" {
				fmt.Fprintln(out)
				fmt.Fprint(out, section)
			}
		}
		return nil
	}

	if !loaded.Writable {
		return fmt.Errorf("%s is not writable, run tlpui with enough privileges", app.Path)
	}

	if !setYes {
		if !styles.IsInteractive(os.Stdin) || !styles.IsInteractive(out) {
			return errors.New("refusing to save without a terminal, pass --yes to confirm")
		}
		ok, confirmErr := styles.Confirm(app.Theme, "Write these changes?", cmd.InOrStdin(), out)
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			fmt.Fprintln(out, app.Theme.Subtle.Render("Canceled"))
			return nil
		}
	}

	saved, err := app.SaveUC.Execute(app.Ctx(), usecase.SaveConfigInput{
		Path:     app.Path,
		Registry: loaded.Registry,
	})
	if err != nil {
		return err
	}
	if saved.NoChanges {
		fmt.Fprintln(out, renderer.RenderChanges(nil))
		return nil
	}

	fmt.Fprintln(out, renderer.RenderSaved(len(saved.Changes), app.Path))
	return nil
}
