package main

import (
	"github.com/Veraticus/kurmi-workspace/internal/cli"
	"github.com/Veraticus/kurmi-workspace/internal/storage"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded extract and prune runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if !settings.LedgerEnabled {
				writeLine(cmd.OutOrStdout(), cli.FormatInfo("The run ledger is disabled (ledger.enabled: false)."))
				return nil
			}

			ledger, err := openLedger(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer func() {
				_ = ledger.Close()
			}()

			runs, err := ledger.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			writeLine(cmd.OutOrStdout(), cli.RenderHistory(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", storage.DefaultHistoryLimit, "maximum number of runs to show")

	return cmd
}
