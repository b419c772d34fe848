package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/Veraticus/kurmi-workspace/internal/classification"
	"github.com/Veraticus/kurmi-workspace/internal/cli"
	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/config"
	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/tui"
	"github.com/Veraticus/kurmi-workspace/internal/tui/components"
	"github.com/Veraticus/kurmi-workspace/internal/workspace"
	"github.com/spf13/cobra"
)

type extractOptions struct {
	input      string
	output     string
	categories []string
	yes        bool
	useTUI     bool
}

func extractCmd() *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Classify a workspace export into per-category folders",
		Long: `Unpack a Kurmi workspace export (*.configfile.zip) into a private scratch
directory and copy every recognised file to <output>/<category>/<path>.

Without --input the current directory and workspaceExport/ are searched and a
menu lists the exports found. Without --categories a checklist lets you pick
which categories to extract; every category starts selected.`,
		Example: `  kurmi extract
  kurmi extract -i workspaceExport/prod.configfile.zip --categories widgets,emails
  kurmi extract --yes -o /tmp/extracted`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "workspace export archive to classify")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from workspace.output_dir)")
	cmd.Flags().StringSliceVar(&opts.categories, "categories", nil, "comma-separated category IDs (default: all)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "skip menus: newest archive, all categories")
	cmd.Flags().BoolVar(&opts.useTUI, "tui", false, "use the full-screen checklist for category selection")

	return cmd
}

func runExtract(cmd *cobra.Command, opts extractOptions) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	prompter := cli.NewPrompter(cmd.InOrStdin(), out)

	ctx := cli.NewInterruptHandler(cmd.ErrOrStderr()).
		HandleInterrupts(cmd.Context(), "Extraction", true)

	archivePath, err := chooseArchive(ctx, prompter, settings, opts)
	if err != nil {
		return err
	}

	categoryIDs, err := chooseCategories(ctx, prompter, opts)
	if err != nil {
		return err
	}

	outputRoot := opts.output
	if outputRoot == "" {
		outputRoot = settings.OutputDir
	}
	outputRoot = config.ExpandPath(outputRoot)

	extractor := workspace.NewExtractor(
		workspace.WithObserver(cli.NewProgressReporter(cmd.ErrOrStderr(), "Classifying files...")),
		workspace.WithScratchDir(settings.ScratchDir),
	)

	run := &model.Run{
		Kind:      model.RunKindExtract,
		Status:    model.RunStatusComplete,
		Source:    archivePath,
		Root:      outputRoot,
		StartedAt: time.Now(),
	}

	stats, err := extractor.Extract(ctx, archivePath, outputRoot, categoryIDs)
	if err != nil {
		return extractError(err, archivePath)
	}

	writeLine(out, cli.RenderExtractionSummary(stats, outputRoot))

	run.Counts = stats.NonZero()
	run.Total = stats.Total()
	recordRun(ctx, settings, run)

	return nil
}

// chooseArchive resolves the archive from --input, --yes or the discovery menu.
func chooseArchive(ctx context.Context, prompter *cli.Prompter, settings config.Settings, opts extractOptions) (string, error) {
	if opts.input != "" {
		return config.ExpandPath(opts.input), nil
	}

	archives, err := workspace.Discover(settings.SearchDirs, settings.ArchiveGlob)
	if err != nil {
		return "", err
	}
	slog.Debug("Discovered workspace exports", "count", len(archives), "dirs", settings.SearchDirs)

	if opts.yes {
		if len(archives) == 0 {
			return "", common.NewUserError(
				fmt.Sprintf("No workspace files matching %s found in %v", settings.ArchiveGlob, settings.SearchDirs),
				common.ErrNoWorkspaceExport)
		}
		return archives[0].Path, nil
	}

	archive, err := prompter.SelectArchive(ctx, archives)
	if err != nil {
		return "", err
	}
	return archive.Path, nil
}

// chooseCategories resolves the categories from --categories, --yes or a checklist.
func chooseCategories(ctx context.Context, prompter *cli.Prompter, opts extractOptions) ([]string, error) {
	taxonomy := classification.Default()

	if len(opts.categories) > 0 {
		if _, err := taxonomy.Subset(opts.categories); err != nil {
			return nil, common.NewUserError(
				fmt.Sprintf("Unknown category. Valid categories: %v", taxonomy.IDs()), err)
		}
		return opts.categories, nil
	}
	if opts.yes {
		return taxonomy.IDs(), nil
	}

	if !opts.useTUI {
		return prompter.SelectCategories(ctx, taxonomy.Categories())
	}

	items := make([]components.ChecklistItem, 0, len(taxonomy.Categories()))
	for _, c := range taxonomy.Categories() {
		items = append(items, components.ChecklistItem{Name: c.ID, Detail: c.Description})
	}
	selected, err := tui.RunChecklist(ctx, items,
		tui.WithTitle("Select categories to extract"),
		tui.WithAllSelected())
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, common.ErrNothingToDo
	}
	return selected, nil
}

// extractError adds an operator-facing message to extraction failures.
func extractError(err error, archivePath string) error {
	var copyErr *common.CopyError
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.NewUserError(fmt.Sprintf("Workspace file not found: %s", archivePath), err)
	case errors.Is(err, common.ErrArchiveCorrupt):
		return common.NewUserError(fmt.Sprintf("%s is not a valid workspace export", filepath.Base(archivePath)), err)
	case errors.As(err, &copyErr):
		return common.NewUserError(
			fmt.Sprintf("Extraction stopped while copying %s; files already copied were left in place", copyErr.Path), err)
	}
	return err
}

func writeLine(w io.Writer, s string) {
	if _, err := fmt.Fprintln(w, s); err != nil {
		slog.Warn("Failed to write output", "error", err)
	}
}
