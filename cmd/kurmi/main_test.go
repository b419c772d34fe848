package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupViper gives each test a clean configuration with a private ledger.
func setupViper(t *testing.T) string {
	t.Helper()

	viper.Reset()
	dbPath := filepath.Join(t.TempDir(), "ledger", "kurmi.db")
	viper.Set(config.KeyLedgerPath, dbPath)
	t.Cleanup(viper.Reset)
	return dbPath
}

// execute runs cmd with args and scripted stdin, returning stdout.
func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"extract", "categories", "vendors", "history", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, versionCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, "kurmi dev\n", out)
}

func TestCategoriesCmd(t *testing.T) {
	out, err := execute(t, categoriesCmd(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "service_definitions")
	assert.Contains(t, out, "*.kurmiApi.js")
	assert.Less(t, strings.Index(out, "js_libraries"), strings.Index(out, "scenarios"))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "declined prompt", err: fmt.Errorf("wrapped: %w", common.ErrCancelled), want: 0},
		{name: "nothing selected", err: common.ErrNothingToDo, want: 0},
		{name: "interrupted", err: context.Canceled, want: 130},
		{name: "user error", err: common.NewUserError("Workspace file not found", common.ErrNotFound), want: 1},
		{name: "other", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
