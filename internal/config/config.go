package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/kurmi-workspace/internal/common"
	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/vendor"
	"github.com/Veraticus/kurmi-workspace/internal/workspace"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyOutputDir      = "workspace.output_dir"
	KeySearchDirs     = "workspace.search_dirs"
	KeyArchiveGlob    = "workspace.archive_glob"
	KeyScratchDir     = "workspace.scratch_dir"
	KeyExempt         = "vendors.exempt"
	KeyPresets        = "vendors.presets"
	KeyRemoveAttempts = "vendors.remove_attempts"
	KeyLedgerPath     = "ledger.path"
	KeyLedgerEnabled  = "ledger.enabled"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyLogFile        = "logging.file"
)

// DefaultOutputDir is where extracted categories are written.
const DefaultOutputDir = "kurmi_workspace_extraction"

// Settings is the resolved application configuration.
type Settings struct {
	OutputDir      string
	ArchiveGlob    string
	ScratchDir     string
	LedgerPath     string
	LogLevel       string
	LogFormat      string
	LogFile        string
	SearchDirs     []string
	Exempt         []string
	Presets        []model.VendorPreset
	RemoveAttempts int
	LedgerEnabled  bool
}

type presetConfig struct {
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	Vendors     []string `mapstructure:"vendors"`
}

// SetDefaults registers default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeySearchDirs, []string{".", "workspaceExport"})
	v.SetDefault(KeyArchiveGlob, workspace.DefaultArchiveGlob)
	v.SetDefault(KeyScratchDir, "")
	v.SetDefault(KeyExempt, vendor.DefaultExempt())
	v.SetDefault(KeyRemoveAttempts, 2)
	v.SetDefault(KeyLedgerPath, "$HOME/.local/share/kurmi/kurmi.db")
	v.SetDefault(KeyLedgerEnabled, true)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
}

// Load resolves Settings from v, expanding paths and validating values.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		OutputDir:      ExpandPath(v.GetString(KeyOutputDir)),
		ArchiveGlob:    v.GetString(KeyArchiveGlob),
		ScratchDir:     ExpandPath(v.GetString(KeyScratchDir)),
		LedgerPath:     ExpandPath(v.GetString(KeyLedgerPath)),
		LedgerEnabled:  v.GetBool(KeyLedgerEnabled),
		LogLevel:       v.GetString(KeyLogLevel),
		LogFormat:      v.GetString(KeyLogFormat),
		LogFile:        ExpandPath(v.GetString(KeyLogFile)),
		SearchDirs:     ExpandPaths(v.GetStringSlice(KeySearchDirs)),
		Exempt:         v.GetStringSlice(KeyExempt),
		RemoveAttempts: v.GetInt(KeyRemoveAttempts),
	}

	if strings.TrimSpace(s.OutputDir) == "" {
		return Settings{}, fmt.Errorf("%w: %s must not be empty", common.ErrInvalidConfig, KeyOutputDir)
	}
	if s.RemoveAttempts < 1 {
		return Settings{}, fmt.Errorf("%w: %s must be at least 1", common.ErrInvalidConfig, KeyRemoveAttempts)
	}

	presets, err := loadPresets(v)
	if err != nil {
		return Settings{}, err
	}
	s.Presets = presets

	return s, nil
}

func loadPresets(v *viper.Viper) ([]model.VendorPreset, error) {
	if !v.IsSet(KeyPresets) {
		return vendor.DefaultPresets(), nil
	}

	raw := make(map[string]presetConfig)
	if err := v.UnmarshalKey(KeyPresets, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyPresets, err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	presets := make([]model.VendorPreset, 0, len(keys))
	for _, key := range keys {
		p := raw[key]
		if len(p.Vendors) == 0 {
			return nil, fmt.Errorf("%w: preset %q has no vendors", common.ErrInvalidConfig, key)
		}
		name := p.Name
		if name == "" {
			name = key
		}
		presets = append(presets, model.VendorPreset{
			Key:         vendor.NormalizePresetKey(key),
			Name:        name,
			Description: p.Description,
			Vendors:     p.Vendors,
		})
	}
	return presets, nil
}
