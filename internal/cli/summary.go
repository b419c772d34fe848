package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/vendor"
	"github.com/Veraticus/kurmi-workspace/internal/workspace"
	"github.com/dustin/go-humanize"
)

// RenderExtractionSummary renders the per-category file counts of a
// finished extraction, in taxonomy order, followed by the total.
func RenderExtractionSummary(stats workspace.Stats, outputRoot string) string {
	var b strings.Builder
	for _, c := range stats.Categories {
		fmt.Fprintf(&b, "%-25s: %4d files - %s\n", c.ID, stats.Counts[c.ID], c.Description)
	}
	b.WriteString(SubtleStyle.Render(strings.Repeat("─", 60)) + "\n")
	fmt.Fprintf(&b, "%-25s: %4d files\n", "TOTAL", stats.Total())
	fmt.Fprintf(&b, "\n%s Scanned %s files, skipped %s\n", ChartIcon,
		humanize.Comma(int64(stats.Scanned)), humanize.Comma(int64(stats.Skipped)))
	fmt.Fprintf(&b, "%s Output: %s", FolderIcon, outputRoot)

	return RenderBox("Parsing complete", b.String())
}

// RenderPruneSummary renders removals per category, the total removed and
// how many vendors were kept. Failed removals are listed after the totals.
func RenderPruneSummary(result vendor.PruneResult, kept int) string {
	var b strings.Builder
	for _, category := range result.Categories() {
		fmt.Fprintf(&b, "%-25s: %3d vendors removed\n", category, result.Removed[category])
	}
	b.WriteString(SubtleStyle.Render(strings.Repeat("─", 60)) + "\n")
	fmt.Fprintf(&b, "%-25s: %3d vendors removed\n", "TOTAL", result.Total)
	fmt.Fprintf(&b, "%-25s: %3d vendors", "KEPT", kept)

	if result.Partial() {
		b.WriteString("\n\n" + FormatWarning(fmt.Sprintf("%d vendor directories could not be removed:", len(result.Failures))))
		for _, f := range result.Failures {
			fmt.Fprintf(&b, "\n  %s %s", ErrorIcon, f.String())
		}
	}

	title := "Vendor removal complete"
	if result.Partial() {
		title = "Vendor removal finished with errors"
	}
	return RenderBox(title, b.String())
}

// RenderVendorSummary renders each category's vendor list followed by every
// vendor with the number of categories it appears in.
func RenderVendorSummary(census model.Census) string {
	var b strings.Builder

	b.WriteString(FormatTitle("Vendor distribution by category") + "\n")
	for _, category := range census.Categories() {
		vendors := census.ByCategory[category]
		fmt.Fprintf(&b, "%s:\n", BoldStyle.Render(category))
		fmt.Fprintf(&b, "  Vendors (%d): %s\n\n", len(vendors), strings.Join(vendors, ", "))
	}

	b.WriteString(FormatTitle(fmt.Sprintf("All unique vendors (%d)", len(census.AllVendors))) + "\n")
	for _, v := range census.AllVendors {
		fmt.Fprintf(&b, "  %-30s (in %d categories)\n", v, census.CategoryCount(v))
	}
	return b.String()
}

// RenderCategoryTable renders the taxonomy with its suffix patterns.
func RenderCategoryTable(categories []model.Category) string {
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-3s %-22s %s", "#", "CATEGORY", "DESCRIPTION")) + "\n")
	for i, c := range categories {
		fmt.Fprintf(&b, "%-3d %-22s %s\n", i+1, BoldStyle.Render(c.ID), c.Description)
		fmt.Fprintf(&b, "    %s\n", SubtleStyle.Render(strings.Join(c.Patterns, " ")))
	}
	return b.String()
}

// RenderPresets renders the configured vendor presets.
func RenderPresets(presets []model.VendorPreset) string {
	var b strings.Builder
	for _, p := range presets {
		fmt.Fprintf(&b, "%s  %s\n", BoldStyle.Render(p.Key), p.Name)
		if p.Description != "" {
			fmt.Fprintf(&b, "  %s\n", SubtleStyle.Render(p.Description))
		}
		fmt.Fprintf(&b, "  Vendors: %s\n\n", strings.Join(p.Vendors, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderHistory renders recorded runs, most recent first.
func RenderHistory(runs []model.Run) string {
	if len(runs) == 0 {
		return FormatInfo("No runs recorded yet.")
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-19s  %-7s  %-8s  %6s  %s", "STARTED", "KIND", "STATUS", "COUNT", "SOURCE")) + "\n")
	for _, r := range runs {
		status := SuccessStyle.Render(fmt.Sprintf("%-8s", r.Status))
		if r.Status != model.RunStatusComplete {
			status = WarningStyle.Render(fmt.Sprintf("%-8s", r.Status))
		}
		fmt.Fprintf(&b, "%-19s  %-7s  %s  %6d  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Kind, status, r.Total, r.Source)
		if r.Failures > 0 {
			fmt.Fprintf(&b, "%21s%s\n", "", ErrorStyle.Render(fmt.Sprintf("%d failures", r.Failures)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
