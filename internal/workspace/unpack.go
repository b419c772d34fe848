package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/klauspost/compress/zip"
)

// Unpack decompresses every entry of the zip archive into dest and returns the
// number of regular files written. Directory structure and entry modification
// times are reproduced. Symlinks are not materialized.
func Unpack(archivePath, dest string) (int, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, fmt.Errorf("%w: open %s: %w", common.ErrArchiveCorrupt, archivePath, err)
	}
	defer func() {
		_ = reader.Close()
	}()

	files := 0
	for _, entry := range reader.File {
		target, err := entryPath(dest, entry.Name)
		if err != nil {
			return files, err
		}

		info := entry.FileInfo()
		switch {
		case info.IsDir():
			if err := os.MkdirAll(target, 0750); err != nil {
				return files, fmt.Errorf("failed to create directory %s: %w", entry.Name, err)
			}
			continue
		case !info.Mode().IsRegular():
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
			return files, fmt.Errorf("failed to create directory for %s: %w", entry.Name, err)
		}
		if err := writeEntry(entry, target); err != nil {
			return files, err
		}
		files++
	}

	return files, nil
}

// entryPath maps an archive entry name onto dest, refusing names that would
// land outside of it.
func entryPath(dest, name string) (string, error) {
	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: entry %q escapes extraction root", common.ErrArchiveCorrupt, name)
	}
	return filepath.Join(dest, local), nil
}

func writeEntry(entry *zip.File, target string) error {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("%w: open entry %s: %w", common.ErrArchiveCorrupt, entry.Name, err)
	}
	defer func() {
		_ = src.Close()
	}()

	perm := entry.Mode().Perm() | 0600
	// #nosec G304 -- target is validated by entryPath.
	dst, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", entry.Name, err)
	}

	// #nosec G110 -- exports are operator supplied; size is bounded by the declared entry size.
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("%w: decompress %s: %w", common.ErrArchiveCorrupt, entry.Name, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", entry.Name, err)
	}

	if modified := entry.Modified; !modified.IsZero() {
		if err := os.Chtimes(target, time.Now(), modified); err != nil {
			return fmt.Errorf("failed to set times on %s: %w", entry.Name, err)
		}
	}
	return nil
}
