package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Matches(t *testing.T) {
	cat := Category{
		ID:       "js_libraries",
		Patterns: []string{"*.util.js", "*.apiutil.js"},
	}

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{name: "exact suffix", filename: "common.util.js", want: true},
		{name: "second pattern", filename: "rest.apiutil.js", want: true},
		{name: "suffix only", filename: ".util.js", want: true},
		{name: "case sensitive", filename: "common.UTIL.js", want: false},
		{name: "different extension", filename: "common.util.ts", want: false},
		{name: "suffix in middle", filename: "common.util.js.bak", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cat.Matches(tt.filename))
		})
	}
}

func TestCategory_MatchesIgnoresPatternsWithoutWildcard(t *testing.T) {
	cat := Category{ID: "odd", Patterns: []string{".mail.js"}}
	assert.False(t, cat.Matches("welcome.mail.js"))
}
