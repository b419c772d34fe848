package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/kurmi-workspace/internal/cli"
	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/config"
	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/tui"
	"github.com/Veraticus/kurmi-workspace/internal/tui/components"
	"github.com/Veraticus/kurmi-workspace/internal/vendor"
	"github.com/spf13/cobra"
)

func vendorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Inspect and prune vendor directories",
		Long: `Vendor directories sit directly under each category of an extraction
output. Scan them, or remove every vendor you do not want to keep.`,
	}

	cmd.AddCommand(scanVendorsCmd())
	cmd.AddCommand(pruneVendorsCmd())
	cmd.AddCommand(presetsVendorsCmd())

	return cmd
}

func scanVendorsCmd() *cobra.Command {
	var (
		dir    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Show which vendors appear in which categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			root := resolveRoot(dir, settings)

			census, err := vendor.Census(root, settings.Exempt)
			if err != nil {
				return censusError(err, root)
			}

			switch format {
			case "table", "":
				if len(census.AllVendors) == 0 {
					writeLine(cmd.OutOrStdout(), cli.FormatInfo("No vendor directories found under "+root))
					return nil
				}
				writeLine(cmd.OutOrStdout(), cli.RenderVendorSummary(census))
				return nil
			default:
				return vendor.NewReport(root, census).Encode(cmd.OutOrStdout(), format)
			}
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "extraction output directory (default from workspace.output_dir)")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table, json, yaml)")

	return cmd
}

type pruneOptions struct {
	dir     string
	keep    []string
	presets []string
	all     bool
	yes     bool
	useTUI  bool
}

func pruneVendorsCmd() *cobra.Command {
	var opts pruneOptions

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove every vendor directory not in the keep set",
		Long: `Choose the vendors to KEEP; every other vendor directory is removed from all
categories except the exempt ones (scenarios by default).

Without --keep, --preset or --all an interactive checklist starts with nothing
selected. Presets only ever add vendors to the selection. Removal always asks
for confirmation unless --yes is given.`,
		Example: `  kurmi vendors prune
  kurmi vendors prune --preset cisco --keep genesys --yes
  kurmi vendors prune -d out --tui`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrune(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "extraction output directory (default from workspace.output_dir)")
	cmd.Flags().StringSliceVar(&opts.keep, "keep", nil, "comma-separated vendors to keep")
	cmd.Flags().StringSliceVar(&opts.presets, "preset", nil, "presets whose vendors are kept")
	cmd.Flags().BoolVar(&opts.all, "all", false, "keep every vendor")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "do not ask for confirmation")
	cmd.Flags().BoolVar(&opts.useTUI, "tui", false, "use the full-screen checklist for vendor selection")

	return cmd
}

func runPrune(cmd *cobra.Command, opts pruneOptions) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	root := resolveRoot(opts.dir, settings)
	out := cmd.OutOrStdout()

	ctx := cli.NewInterruptHandler(cmd.ErrOrStderr()).
		HandleInterrupts(cmd.Context(), "Vendor removal", true)

	census, err := vendor.Census(root, settings.Exempt)
	if err != nil {
		return censusError(err, root)
	}
	if len(census.AllVendors) == 0 {
		writeLine(out, cli.FormatInfo("No vendor directories found under "+root))
		return nil
	}

	prompter := cli.NewPrompter(cmd.InOrStdin(), out, cli.WithPresets(settings.Presets))

	keep, err := chooseKeepSet(ctx, prompter, census, settings, opts)
	if err != nil {
		return err
	}

	if !opts.yes {
		if err := prompter.ConfirmPrune(ctx, keep, census.AllVendors); err != nil {
			return err
		}
	}

	run := &model.Run{
		Kind:      model.RunKindPrune,
		Status:    model.RunStatusComplete,
		Source:    root,
		Root:      root,
		StartedAt: time.Now(),
	}

	pruner := vendor.NewPruner(vendor.WithRetry(retryOptions(settings)))
	result, pruneErr := pruner.Prune(ctx, root, settings.Exempt, keep)

	writeLine(out, cli.RenderPruneSummary(result, len(keep)))

	run.Counts = result.Removed
	run.Total = result.Total
	run.Failures = len(result.Failures)
	if result.Partial() || pruneErr != nil {
		run.Status = model.RunStatusPartial
	}
	recordRun(ctx, settings, run)

	if pruneErr != nil {
		return pruneErr
	}
	if result.Partial() {
		return common.NewUserError(
			fmt.Sprintf("%d vendor directories could not be removed", len(result.Failures)),
			common.ErrDeleteFailed)
	}
	return nil
}

// chooseKeepSet builds the keep set from flags, or interactively when no
// keep flag was given.
func chooseKeepSet(ctx context.Context, prompter *cli.Prompter, census model.Census, settings config.Settings, opts pruneOptions) (vendor.KeepSet, error) {
	if opts.all || len(opts.keep) > 0 || len(opts.presets) > 0 {
		return keepSetFromFlags(census, settings.Presets, opts)
	}

	if !opts.useTUI {
		return prompter.SelectVendors(ctx, census)
	}

	items := make([]components.ChecklistItem, 0, len(census.AllVendors))
	for _, v := range census.AllVendors {
		items = append(items, components.ChecklistItem{
			Name:   v,
			Detail: fmt.Sprintf("(in %d categories)", census.CategoryCount(v)),
		})
	}
	selected, err := tui.RunChecklist(ctx, items,
		tui.WithTitle("Select vendors to KEEP (others will be removed)"),
		tui.WithPresets(settings.Presets))
	if err != nil {
		return nil, err
	}
	return vendor.NewKeepSet(selected...), nil
}

// keepSetFromFlags unions --keep, --preset and --all. Names missing from the
// census are dropped.
func keepSetFromFlags(census model.Census, presets []model.VendorPreset, opts pruneOptions) (vendor.KeepSet, error) {
	if opts.all {
		return vendor.NewKeepSet(census.AllVendors...), nil
	}

	names := append([]string(nil), opts.keep...)
	for _, key := range opts.presets {
		preset, ok := vendor.FindPreset(presets, key)
		if !ok {
			return nil, common.NewUserError(
				fmt.Sprintf("Unknown preset %q. Run 'kurmi vendors presets' to list them.", key),
				common.ErrInvalidSelection)
		}
		names = append(names, preset.Vendors...)
	}

	keep := vendor.NewKeepSet()
	for _, name := range names {
		if !census.HasVendor(name) {
			slog.Debug("Kept vendor not present", "vendor", name)
			continue
		}
		keep[name] = struct{}{}
	}
	return keep, nil
}

func presetsVendorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the vendor presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), cli.RenderPresets(settings.Presets))
			return nil
		},
	}
}

func resolveRoot(dir string, settings config.Settings) string {
	if dir == "" {
		return settings.OutputDir
	}
	return config.ExpandPath(dir)
}

func censusError(err error, root string) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NewUserError(
			fmt.Sprintf("Extraction directory %s not found. Run 'kurmi extract' first.", root), err)
	}
	return err
}
