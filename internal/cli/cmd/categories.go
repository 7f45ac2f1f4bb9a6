package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tlpui/internal/cli/styles"
	"github.com/bnema/tlpui/internal/infrastructure/categories"
)

var categoriesSchema bool

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories and their items",
	Long: `List the categories of the category document in use.

With --schema the JSON Schema of the category document is printed instead,
for editors and validators of custom documents.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().BoolVar(&categoriesSchema, "schema", false, "print the JSON Schema of the category document")
}

func runCategories(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if categoriesSchema {
		schema, err := categories.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(schema))
		return nil
	}

	app, err := requireApp()
	if err != nil {
		return err
	}
	descriptors, err := app.Categories.Load(app.Ctx())
	if err != nil {
		return fmt.Errorf("load categories from %s: %w", app.Categories.Origin(), err)
	}

	fmt.Fprintln(out, app.Theme.Subtle.Render("Source: "+app.Categories.Origin()))
	fmt.Fprintln(out, styles.RenderCategories(descriptors))
	return nil
}
