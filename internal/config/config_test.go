package config

import (
	"strings"
	"testing"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()

	v := viper.New()
	SetDefaults(v)
	if yaml != "" {
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/operator")

	s, err := Load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputDir, s.OutputDir)
	assert.Equal(t, []string{".", "workspaceExport"}, s.SearchDirs)
	assert.Equal(t, "*.configfile.zip", s.ArchiveGlob)
	assert.Equal(t, []string{"scenarios"}, s.Exempt)
	assert.Equal(t, "/home/operator/.local/share/kurmi/kurmi.db", s.LedgerPath)
	assert.True(t, s.LedgerEnabled)
	assert.Equal(t, 2, s.RemoveAttempts)
	require.Len(t, s.Presets, 3)
	assert.Equal(t, "cisco", s.Presets[0].Key)
}

func TestLoad_FromFile(t *testing.T) {
	s, err := Load(newViper(t, `
workspace:
  output_dir: /srv/kurmi/out
  search_dirs: [/srv/exports]
vendors:
  exempt: [scenarios, widgets]
  presets:
    avaya:
      name: Avaya
      description: Avaya on-premises
      vendors: [Avaya, aura]
    genesys:
      vendors: [genesysCloud]
ledger:
  enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, "/srv/kurmi/out", s.OutputDir)
	assert.Equal(t, []string{"/srv/exports"}, s.SearchDirs)
	assert.Equal(t, []string{"scenarios", "widgets"}, s.Exempt)
	assert.False(t, s.LedgerEnabled)

	require.Len(t, s.Presets, 2)
	assert.Equal(t, "avaya", s.Presets[0].Key)
	assert.Equal(t, "Avaya", s.Presets[0].Name)
	assert.Equal(t, []string{"Avaya", "aura"}, s.Presets[0].Vendors)
	assert.Equal(t, "genesys", s.Presets[1].Name)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty output", yaml: "workspace:\n  output_dir: \"\"\n"},
		{name: "zero attempts", yaml: "vendors:\n  remove_attempts: 0\n"},
		{name: "preset without vendors", yaml: "vendors:\n  presets:\n    empty:\n      name: Empty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.yaml))
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/operator")
	t.Setenv("KURMI_EXPORTS", "/data/exports")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, "/home/operator", ExpandPath("~"))
	assert.Equal(t, "/home/operator/out", ExpandPath("~/out"))
	assert.Equal(t, "/data/exports/a.zip", ExpandPath("$KURMI_EXPORTS/a.zip"))
	assert.Equal(t, []string{"/home/operator/x", "rel"}, ExpandPaths([]string{"~/x", " ", "rel"}))
}
