package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter renders extraction progress as a terminal progress bar.
// It satisfies workspace.Observer.
type ProgressReporter struct {
	writer      io.Writer
	bar         *progressbar.ProgressBar
	description string
}

// NewProgressReporter creates a reporter that draws to writer.
func NewProgressReporter(writer io.Writer, description string) *ProgressReporter {
	if description == "" {
		description = "Classifying files..."
	}
	return &ProgressReporter{
		writer:      writer,
		description: description,
	}
}

// Begin starts a bar sized to the number of files to be walked.
func (r *ProgressReporter) Begin(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+r.description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(r.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// Advance moves the bar by one file.
func (r *ProgressReporter) Advance(_ string) {
	if r.bar == nil {
		return
	}
	if err := r.bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Finish completes the bar.
func (r *ProgressReporter) Finish() {
	if r.bar == nil {
		return
	}
	if err := r.bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}
