package main

import (
	"github.com/Veraticus/kurmi-workspace/internal/classification"
	"github.com/Veraticus/kurmi-workspace/internal/cli"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the file categories",
		Long: `Display the categories files are classified into, in matching order, with
their filename suffix patterns. A file goes to the first category with a
matching suffix; workspace.txt is never copied.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeLine(cmd.OutOrStdout(), cli.RenderCategoryTable(classification.Default().Categories()))
			return nil
		},
	}
}
