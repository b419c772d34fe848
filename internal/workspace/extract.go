// Package workspace unpacks workspace export archives and lays their files out
// by category.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/kurmi-workspace/internal/classification"
	"github.com/Veraticus/kurmi-workspace/internal/common"
)

// ScratchPrefix names the temporary directories archives are unpacked into.
const ScratchPrefix = "kurmi_workspace_"

// Observer is notified as files are walked during an extraction.
type Observer interface {
	Begin(total int)
	Advance(relPath string)
	Finish()
}

// Extractor classifies the contents of a workspace export archive into
// <output_root>/<category>/<relative_path>.
type Extractor struct {
	taxonomy   *classification.Taxonomy
	observer   Observer
	scratchDir string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTaxonomy replaces the default category taxonomy.
func WithTaxonomy(t *classification.Taxonomy) Option {
	return func(e *Extractor) {
		e.taxonomy = t
	}
}

// WithObserver reports walk progress to o.
func WithObserver(o Observer) Option {
	return func(e *Extractor) {
		e.observer = o
	}
}

// WithScratchDir sets the parent directory for the unpack location.
// The system temp directory is used when unset.
func WithScratchDir(dir string) Option {
	return func(e *Extractor) {
		e.scratchDir = dir
	}
}

// NewExtractor creates an extractor using the default taxonomy.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		taxonomy: classification.Default(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract unpacks archivePath into a private scratch directory, copies every
// file matching one of categoryIDs (all categories when empty) into
// outputRoot, and returns per-category counts. The scratch directory is
// removed on every return path. The first copy failure aborts the run.
func (e *Extractor) Extract(ctx context.Context, archivePath, outputRoot string, categoryIDs []string) (Stats, error) {
	categories, err := e.taxonomy.Subset(categoryIDs)
	if err != nil {
		return Stats{}, err
	}
	stats := newStats(categories)

	info, err := os.Stat(archivePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return stats, common.NotFoundError("workspace archive", archivePath)
		}
		return stats, fmt.Errorf("failed to stat archive: %w", err)
	}
	if info.IsDir() {
		return stats, fmt.Errorf("%w: %s is a directory", common.ErrArchiveCorrupt, archivePath)
	}

	scratch, err := os.MkdirTemp(e.scratchDir, ScratchPrefix)
	if err != nil {
		return stats, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() {
		slog.Debug("Cleaning up scratch directory", "path", scratch)
		if err := os.RemoveAll(scratch); err != nil {
			slog.Warn("Failed to remove scratch directory", "path", scratch, "error", err)
		}
	}()

	slog.Info("Extracting workspace archive", "archive", archivePath, "scratch", scratch)
	total, err := Unpack(archivePath, scratch)
	if err != nil {
		return stats, err
	}

	if err := os.MkdirAll(outputRoot, 0750); err != nil {
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}

	e.observer.Begin(total)
	err = filepath.WalkDir(scratch, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(scratch, path)
		if err != nil {
			return err
		}
		stats.Scanned++
		defer e.observer.Advance(filepath.ToSlash(rel))

		if d.Name() == classification.SentinelFile {
			stats.Skipped++
			return nil
		}
		category, ok := classification.Resolve(categories, d.Name())
		if !ok {
			stats.Skipped++
			return nil
		}

		dst := filepath.Join(outputRoot, category.ID, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0750); err != nil {
			return &common.CopyError{Path: filepath.ToSlash(rel), Err: err}
		}
		if err := copyFile(path, dst); err != nil {
			return &common.CopyError{Path: filepath.ToSlash(rel), Err: err}
		}

		stats.Counts[category.ID]++
		common.LogDebug("Copied file", common.Fields{
			"path":     filepath.ToSlash(rel),
			"category": category.ID,
		})
		return nil
	})
	if err != nil {
		return stats, err
	}
	e.observer.Finish()

	slog.Info("Extraction complete",
		"output", outputRoot,
		"scanned", stats.Scanned,
		"copied", stats.Total(),
		"skipped", stats.Skipped)

	return stats, nil
}

type nopObserver struct{}

func (nopObserver) Begin(int)      {}
func (nopObserver) Advance(string) {}
func (nopObserver) Finish()        {}
