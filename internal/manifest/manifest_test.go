package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extension.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
name: example-extension
version: 0.1.0
scheme: example
scan-dirs:
  - extension/core
  - extension/example
includes:
  - config/defaults.yaml
`)

	mf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example-extension", mf.Name)
	assert.Equal(t, "example", mf.Scheme)
	assert.Equal(t, []string{"extension/core", "extension/example"}, mf.ScanDirs)
	assert.Equal(t, []string{"config/defaults.yaml"}, mf.Includes)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeManifest(t, "scheme: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Manifest{
		Name:     "x",
		Scheme:   "example",
		ScanDirs: []string{"extension/example"},
	}

	tests := []struct {
		name    string
		mutate  func(m *Manifest)
		wantErr error
	}{
		{"valid", func(_ *Manifest) {}, nil},
		{"empty scheme", func(m *Manifest) { m.Scheme = "" }, ErrInvalidScheme},
		{"uppercase scheme", func(m *Manifest) { m.Scheme = "Example" }, ErrInvalidScheme},
		{"scheme with slash", func(m *Manifest) { m.Scheme = "ex/ample" }, ErrInvalidScheme},
		{"scheme starting with digit", func(m *Manifest) { m.Scheme = "9ex" }, ErrInvalidScheme},
		{"scheme with digit after first", func(m *Manifest) { m.Scheme = "ex9" }, nil},
		{"no scan dirs", func(m *Manifest) { m.ScanDirs = nil }, ErrNoScanDirs},
		{"duplicate scan dir", func(m *Manifest) { m.ScanDirs = []string{"a", "a"} }, ErrDuplicateEntry},
		{"duplicate include", func(m *Manifest) { m.Includes = []string{"c.yaml", "c.yaml"} }, ErrDuplicateEntry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := valid
			m.ScanDirs = append([]string(nil), valid.ScanDirs...)
			tc.mutate(&m)

			err := m.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			}
		})
	}
}

func TestURI(t *testing.T) {
	m := Manifest{Scheme: "example"}
	assert.Equal(t, "example://config", m.URI("config"))
	assert.Equal(t, "example://config", m.URI("/config"))
}
