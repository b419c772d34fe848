package workspace

import "github.com/Veraticus/kurmi-workspace/internal/model"

// Stats counts the files placed in each category during one extraction.
type Stats struct {
	Counts     map[string]int
	Categories []model.Category
	Scanned    int
	Skipped    int
}

func newStats(categories []model.Category) Stats {
	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		counts[c.ID] = 0
	}
	return Stats{
		Counts:     counts,
		Categories: categories,
	}
}

// Total returns the number of files copied across all categories.
func (s Stats) Total() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

// NonZero returns only the categories that received at least one file.
func (s Stats) NonZero() map[string]int {
	out := make(map[string]int)
	for id, n := range s.Counts {
		if n > 0 {
			out[id] = n
		}
	}
	return out
}
