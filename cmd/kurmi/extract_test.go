package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/config"
	"github.com/Veraticus/kurmi-workspace/internal/storage"
	"github.com/Veraticus/kurmi-workspace/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prod.configfile.zip")
	testutil.WriteArchive(t, path, map[string]string{
		"workspace.txt":                     "sentinel",
		"services/Cisco/phone.service.xml":  "<service/>",
		"services/Cisco/phone.inference.js": "infer()",
		"ui/Microsoft/panel.widget.js":      "widget()",
		"mail/welcome.mail.js":              "mail()",
		"scenarios/onboard.scenario.json":   "{}",
		"notes/readme.md":                   "ignored",
	})
	return path
}

func TestExtractCmd_Flags(t *testing.T) {
	dbPath := setupViper(t)
	archive := exportFixture(t)
	output := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, extractCmd(), "",
		"-i", archive, "-o", output, "--categories", "service_definitions,widgets")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(output, "service_definitions", "services", "Cisco", "phone.service.xml"))
	assert.FileExists(t, filepath.Join(output, "widgets", "ui", "Microsoft", "panel.widget.js"))
	assert.NoDirExists(t, filepath.Join(output, "emails"))
	assert.NoFileExists(t, filepath.Join(output, "workspace.txt"))

	assert.Contains(t, out, "Parsing complete")
	assert.Contains(t, out, "TOTAL")
	assert.NotContains(t, out, "emails")

	history, err := execute(t, historyCmd(), "")
	require.NoError(t, err)
	assert.Contains(t, history, "EXTRACT")
	assert.Contains(t, history, "COMPLETE")

	// Only categories that received files are recorded.
	ledger, err := storage.Open(context.Background(), dbPath)
	require.NoError(t, err)
	defer ledger.Close()
	runs, err := ledger.ListRuns(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, map[string]int{"service_definitions": 1, "widgets": 1}, runs[0].Counts)
}

func TestExtractCmd_InteractiveCategories(t *testing.T) {
	setupViper(t)
	archive := exportFixture(t)
	output := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, extractCmd(), "none\n9\ndone\n", "-i", archive, "-o", output)
	require.NoError(t, err)

	assert.Contains(t, out, "Select categories to extract")
	assert.FileExists(t, filepath.Join(output, "emails", "mail", "welcome.mail.js"))
	assert.NoDirExists(t, filepath.Join(output, "service_definitions"))
}

func TestExtractCmd_DiscoverNewest(t *testing.T) {
	setupViper(t)
	exports := t.TempDir()
	archive := exportFixture(t)
	data, err := os.ReadFile(archive)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(exports, "lab.configfile.zip"), data, 0600))

	viper.Set(config.KeySearchDirs, []string{exports})
	output := filepath.Join(t.TempDir(), "out")

	_, err = execute(t, extractCmd(), "", "--yes", "-o", output)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(output, "scenarios"))
}

func TestExtractCmd_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		setup   func(t *testing.T) []string
		name    string
		stdin   string
	}{
		{
			name: "unknown category",
			setup: func(t *testing.T) []string {
				return []string{"-i", exportFixture(t), "--categories", "bogus"}
			},
			wantErr: common.ErrUnknownCategory,
		},
		{
			name: "missing archive",
			setup: func(t *testing.T) []string {
				return []string{"-i", filepath.Join(t.TempDir(), "missing.configfile.zip"), "--yes"}
			},
			wantErr: common.ErrNotFound,
		},
		{
			name: "no exports found",
			setup: func(t *testing.T) []string {
				viper.Set(config.KeySearchDirs, []string{t.TempDir()})
				return []string{"--yes"}
			},
			wantErr: common.ErrNoWorkspaceExport,
		},
		{
			name: "quit archive menu",
			setup: func(t *testing.T) []string {
				dir := t.TempDir()
				testutil.WriteArchive(t, filepath.Join(dir, "a.configfile.zip"), map[string]string{"a.widget.js": "x"})
				viper.Set(config.KeySearchDirs, []string{dir})
				return nil
			},
			stdin:   "q\n",
			wantErr: common.ErrCancelled,
		},
		{
			name: "empty category selection",
			setup: func(t *testing.T) []string {
				return []string{"-i", exportFixture(t)}
			},
			stdin:   "none\n\n",
			wantErr: common.ErrNothingToDo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupViper(t)
			viper.Set(config.KeyOutputDir, filepath.Join(t.TempDir(), "out"))
			args := tt.setup(t)

			_, err := execute(t, extractCmd(), tt.stdin, args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractCmd_LedgerDisabled(t *testing.T) {
	dbPath := setupViper(t)
	viper.Set(config.KeyLedgerEnabled, false)

	_, err := execute(t, extractCmd(), "", "-i", exportFixture(t), "-o", filepath.Join(t.TempDir(), "out"), "--yes")
	require.NoError(t, err)
	assert.NoFileExists(t, dbPath)

	out, err := execute(t, historyCmd(), "")
	require.NoError(t, err)
	assert.Contains(t, out, "disabled")
}
