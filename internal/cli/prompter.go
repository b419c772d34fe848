package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/selection"
	"github.com/Veraticus/kurmi-workspace/internal/vendor"
	"github.com/Veraticus/kurmi-workspace/internal/workspace"
	"github.com/dustin/go-humanize"
)

const ruleWidth = 80

// Prompter drives the numbered line menus used by the extract and prune commands.
type Prompter struct {
	writer  io.Writer
	reader  *NonBlockingReader
	now     func() time.Time
	presets []model.VendorPreset
}

// PrompterOption configures a Prompter.
type PrompterOption func(*Prompter)

// WithPresets sets the vendor presets offered by SelectVendors.
func WithPresets(presets []model.VendorPreset) PrompterOption {
	return func(p *Prompter) {
		p.presets = presets
	}
}

// WithClock overrides the clock used for relative modification times.
func WithClock(now func() time.Time) PrompterOption {
	return func(p *Prompter) {
		p.now = now
	}
}

// NewPrompter creates a prompter reading answers from reader and writing menus to writer.
func NewPrompter(reader io.Reader, writer io.Writer, opts ...PrompterOption) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	p := &Prompter{
		reader:  NewNonBlockingReader(reader),
		writer:  writer,
		now:     time.Now,
		presets: vendor.DefaultPresets(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SelectArchive lists the discovered archives and returns the one chosen by number.
// Entering q returns common.ErrCancelled.
func (p *Prompter) SelectArchive(ctx context.Context, archives []workspace.Archive) (workspace.Archive, error) {
	if len(archives) == 0 {
		return workspace.Archive{}, common.NewUserError(
			"No workspace files found. Place *.configfile.zip exports in the current directory or workspaceExport/.",
			common.ErrNoWorkspaceExport)
	}

	for {
		p.printf("\n%s\n\n", FormatTitle("Select workspace file to parse"))
		for i, a := range archives {
			p.printf("  %d. %s\n", i+1, BoldStyle.Render(a.Name()))
			p.printf("     %s\n\n", SubtleStyle.Render(fmt.Sprintf("Size: %s | Modified: %s (%s)",
				humanize.Bytes(uint64(max(a.Size, 0))),
				a.ModTime.Format("2006-01-02 15:04:05"),
				humanize.RelTime(a.ModTime, p.now(), "ago", "from now"))))
		}
		p.println(rule())
		p.println("Enter the number of the workspace file to parse (or 'q' to quit)")
		p.println(rule())

		input, err := p.ask(ctx, "Your choice")
		if err != nil {
			return workspace.Archive{}, err
		}
		input = strings.ToLower(input)

		if input == "q" || input == "quit" {
			return workspace.Archive{}, common.ErrCancelled
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			p.println(FormatError("Invalid input. Please enter a number or 'q' to quit"))
			continue
		}
		if n < 1 || n > len(archives) {
			p.println(FormatError(fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d", len(archives))))
			continue
		}

		selected := archives[n-1]
		p.println(FormatSuccess("Selected: " + selected.Name()))
		return selected, nil
	}
}

// SelectCategories runs the category checklist. Every category starts
// selected. An empty final selection returns common.ErrNothingToDo.
func (p *Prompter) SelectCategories(ctx context.Context, categories []model.Category) ([]string, error) {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	set := selection.NewAllSelected(ids)

	for {
		p.printf("\n%s\n\n", FormatTitle("Select categories to extract"))
		for i, c := range categories {
			p.printf("  %d. %s %-25s - %s\n", i+1, checkbox(set.IsSelected(i)), c.ID, c.Description)
		}
		p.println()
		p.println(rule())
		p.println("Commands:")
		p.println("  - Enter numbers to toggle (e.g., 1,3,5 or 1-3)")
		p.println("  - Type 'all' to select all categories")
		p.println("  - Type 'none' to deselect all categories")
		p.println("  - Press Enter or type 'done' to continue")
		p.println(rule())

		input, err := p.ask(ctx, "Your choice")
		if err != nil {
			return nil, err
		}

		done := p.applyCommand(set, strings.ToLower(input), "categories")
		if done {
			break
		}
	}

	selected := set.Selected()
	if len(selected) == 0 {
		p.println(FormatWarning("No categories selected. Exiting."))
		return nil, common.ErrNothingToDo
	}

	p.printf("\nSelected %d categories:\n", len(selected))
	for _, id := range selected {
		p.printf("  - %s\n", id)
	}
	p.println()
	return selected, nil
}

// SelectVendors runs the keep-set checklist over every vendor in the census.
// The keep set starts empty; presets only ever add to it. Entering q returns
// common.ErrCancelled.
func (p *Prompter) SelectVendors(ctx context.Context, census model.Census) (vendor.KeepSet, error) {
	set := selection.New(census.AllVendors)

	for {
		p.printf("\n%s\n\n", FormatTitle("Select vendors to KEEP (others will be removed)"))
		for i, v := range census.AllVendors {
			p.printf("  %2d. %s %-30s (in %d categories)\n", i+1, checkbox(set.IsSelected(i)), v, census.CategoryCount(v))
		}
		p.println()
		p.println(rule())
		p.println("Commands:")
		p.println("  - Enter numbers to toggle (e.g., 1,3,5 or 1-3)")
		p.println("  - Type 'all' to select all vendors")
		p.println("  - Type 'none' to deselect all vendors")
		if len(p.presets) > 0 {
			p.println()
			p.println("Presets:")
			for _, preset := range p.presets {
				p.printf("  - Type '%s' for %s (%s)\n", preset.Key, preset.Name, preset.Description)
			}
		}
		p.println()
		p.println("  - Press Enter or type 'done' to continue")
		p.println("  - Type 'q' to quit without changes")
		p.println(rule())

		input, err := p.ask(ctx, "Your choice")
		if err != nil {
			return nil, err
		}
		input = strings.ToLower(input)

		if input == "q" || input == "quit" {
			slog.Info("Vendor selection cancelled")
			return nil, common.ErrCancelled
		}

		if preset, ok := vendor.FindPreset(p.presets, input); ok {
			matched := set.Add(preset.Vendors...)
			p.println(FormatSuccess("Applied preset: " + preset.Name))
			p.printf("Added %d vendors from preset\n", matched)
			p.printf("Total vendors selected: %d\n", set.Count())
			continue
		}

		if p.applyCommand(set, input, "vendors") {
			break
		}
	}

	return vendor.NewKeepSet(set.Selected()...), nil
}

// ConfirmPrune shows the keep and removal lists and asks for an explicit
// "yes". An empty keep set needs its own confirmation first. Any other
// answer returns common.ErrCancelled.
func (p *Prompter) ConfirmPrune(ctx context.Context, keep vendor.KeepSet, allVendors []string) error {
	if len(keep) == 0 {
		p.println(FormatWarning("No vendors selected. All vendor files will be removed!"))
		ok, err := p.Confirm(ctx, "Are you sure?")
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrCancelled
		}
	}

	p.printf("\nSelected %d vendors to KEEP:\n", len(keep))
	for _, v := range keep.Names() {
		p.printf("  - %s\n", v)
	}
	p.println()

	remove := keep.RemovalSet(allVendors)
	if len(remove) == 0 {
		return nil
	}

	p.println(WarningStyle.Render(fmt.Sprintf("The following %d vendors will be REMOVED:", len(remove))))
	for _, v := range remove {
		p.printf("  - %s\n", v)
	}
	p.println()

	ok, err := p.Confirm(ctx, "Proceed with removal?")
	if err != nil {
		return err
	}
	if !ok {
		slog.Info("Vendor removal cancelled")
		return common.ErrCancelled
	}
	return nil
}

// Confirm asks a yes/no question. Only the full word "yes" counts as consent.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.ask(ctx, question+" (yes/no)")
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "yes", nil
}

// applyCommand handles the shared checklist commands and reports whether
// the operator finished selecting.
func (p *Prompter) applyCommand(set *selection.Set, input, noun string) bool {
	switch input {
	case "", "done":
		return true
	case "all":
		set.SelectAll()
		return false
	case "none":
		set.SelectNone()
		return false
	}

	numbers, err := selection.ParseNumbers(input, set.Len())
	if err != nil {
		p.println(FormatError("Invalid input. Please enter numbers, ranges (1-3), or commands (all/none/done)"))
		return false
	}
	for _, n := range set.ToggleNumbers(numbers) {
		p.println(FormatWarning(fmt.Sprintf("Number %d is out of range (1-%d %s)", n, set.Len(), noun)))
	}
	return false
}

func (p *Prompter) ask(ctx context.Context, prompt string) (string, error) {
	p.printf("\n%s", FormatPrompt(prompt))

	input, err := p.reader.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, ErrInputCancelled) || errors.Is(err, ErrInputClosed) {
			return "", fmt.Errorf("%w: %w", common.ErrCancelled, err)
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return input, nil
}

func (p *Prompter) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.writer, format, args...); err != nil {
		slog.Warn("Failed to write prompt output", "error", err)
	}
}

func (p *Prompter) println(args ...any) {
	if _, err := fmt.Fprintln(p.writer, args...); err != nil {
		slog.Warn("Failed to write prompt output", "error", err)
	}
}

func rule() string {
	return SubtleStyle.Render(strings.Repeat("=", ruleWidth))
}
