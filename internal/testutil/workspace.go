package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture is a predefined extraction layout: category to vendor names.
type Fixture map[string][]string

// Predefined layouts for common test scenarios.
var (
	// FixtureScenarios has vendors only under the exempt scenarios category.
	FixtureScenarios = Fixture{
		"scenarios": {"Avaya", "Cisco"},
	}

	// FixtureMixedVendors spreads vendors unevenly over several categories.
	FixtureMixedVendors = Fixture{
		"connectors": {"Cisco", "Genesys"},
		"emails":     {"Cisco", "webex"},
		"widgets":    {"Microsoft"},
	}
)

// WorkspaceBuilder lays out root/<category>/<vendor>/ trees the way an
// extraction leaves them.
type WorkspaceBuilder struct {
	t       *testing.T
	vendors map[string][]string
	files   map[string]string
}

// NewWorkspaceBuilder starts an empty layout.
func NewWorkspaceBuilder(t *testing.T) *WorkspaceBuilder {
	t.Helper()
	return &WorkspaceBuilder{
		t:       t,
		vendors: make(map[string][]string),
		files:   make(map[string]string),
	}
}

// WithVendors adds vendor directories under category. With no vendors the
// category directory is created empty.
func (b *WorkspaceBuilder) WithVendors(category string, vendors ...string) *WorkspaceBuilder {
	b.vendors[category] = append(b.vendors[category], vendors...)
	return b
}

// WithFixture adds every category and vendor of f.
func (b *WorkspaceBuilder) WithFixture(f Fixture) *WorkspaceBuilder {
	for category, vendors := range f {
		b.WithVendors(category, vendors...)
	}
	return b
}

// WithFile adds a file at the slash-separated relative path.
func (b *WorkspaceBuilder) WithFile(rel, content string) *WorkspaceBuilder {
	b.files[rel] = content
	return b
}

// Build writes the layout into a fresh temporary directory and returns it.
// Each vendor directory gets one nested file so removal has work to do.
func (b *WorkspaceBuilder) Build() string {
	b.t.Helper()

	root := b.t.TempDir()
	for category, vendors := range b.vendors {
		mkdir(b.t, filepath.Join(root, category))
		for _, vendor := range vendors {
			dir := filepath.Join(root, category, vendor, "nested")
			mkdir(b.t, dir)
			writeFile(b.t, filepath.Join(dir, "file.connector.xml"), category+"/"+vendor)
		}
	}
	for rel, content := range b.files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		mkdir(b.t, filepath.Dir(path))
		writeFile(b.t, path, content)
	}
	return root
}

func mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
