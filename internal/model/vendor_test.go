package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCensus_Helpers(t *testing.T) {
	census := Census{
		ByCategory: map[string][]string{
			"emails":     {"CiscoA", "webex"},
			"connectors": {"CiscoA", "CiscoB"},
		},
		AllVendors: []string{"CiscoA", "CiscoB", "webex"},
	}

	assert.Equal(t, []string{"connectors", "emails"}, census.Categories())
	assert.Equal(t, 2, census.CategoryCount("CiscoA"))
	assert.Equal(t, 1, census.CategoryCount("webex"))
	assert.Equal(t, 0, census.CategoryCount("missing"))
	assert.True(t, census.HasVendor("CiscoB"))
	assert.False(t, census.HasVendor("Cisco"))
}
