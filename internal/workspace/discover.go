package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultArchiveGlob matches workspace export archives.
const DefaultArchiveGlob = "*.configfile.zip"

// Archive is a workspace export candidate found on disk.
type Archive struct {
	ModTime time.Time
	Path    string
	Size    int64
}

// Name returns the archive's file name.
func (a Archive) Name() string {
	return filepath.Base(a.Path)
}

// Discover lists files matching glob directly inside each of dirs, newest first.
// Missing directories are skipped.
func Discover(dirs []string, glob string) ([]Archive, error) {
	if glob == "" {
		glob = DefaultArchiveGlob
	}

	seen := make(map[string]bool)
	var archives []Archive
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		matches, err := filepath.Glob(filepath.Join(dir, glob))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", glob, err)
		}

		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				abs = match
			}
			if seen[abs] {
				continue
			}

			fi, err := os.Stat(match)
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
			seen[abs] = true
			archives = append(archives, Archive{
				Path:    match,
				Size:    fi.Size(),
				ModTime: fi.ModTime(),
			})
		}
	}

	sort.SliceStable(archives, func(i, j int) bool {
		return archives[i].ModTime.After(archives[j].ModTime)
	})

	return archives, nil
}
