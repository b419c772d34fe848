// Package model defines the core domain models used throughout the application.
package model

import "strings"

// PatternWildcard is the only wildcard a suffix pattern may carry, and only as its first byte.
const PatternWildcard = "*"

// Category is a named bucket of the workspace taxonomy.
type Category struct {
	ID          string
	Description string
	// Patterns are "*<suffix>" strings checked in order against a file's basename.
	Patterns []string
}

// Matches reports whether name ends with any of the category's suffixes.
// The comparison is case-sensitive and purely literal.
func (c Category) Matches(name string) bool {
	for _, p := range c.Patterns {
		if !strings.HasPrefix(p, PatternWildcard) {
			continue
		}
		if strings.HasSuffix(name, p[len(PatternWildcard):]) {
			return true
		}
	}
	return false
}
