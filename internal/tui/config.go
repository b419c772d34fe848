package tui

import (
	"io"

	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Input       io.Reader
	Output      io.Writer
	Title       string
	Presets     []model.VendorPreset
	Width       int
	Height      int
	AllSelected bool
	AltScreen   bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Title:     "Select items",
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithTitle sets the heading shown above the checklist.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithAllSelected starts with every item checked.
func WithAllSelected() Option {
	return func(c *Config) {
		c.AllSelected = true
	}
}

// WithPresets offers vendor presets on the number keys.
func WithPresets(presets []model.VendorPreset) Option {
	return func(c *Config) {
		c.Presets = presets
	}
}

// WithTheme sets the TUI theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithIO replaces the terminal streams and disables the alternate screen.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Config) {
		c.Input = in
		c.Output = out
		c.AltScreen = false
	}
}
