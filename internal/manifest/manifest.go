// Package manifest loads and validates the discovery manifest, the static
// declaration the host framework reads when loading this extension as a
// plugin. The manifest names the source directories the host scans for
// capability objects and any extra configuration files to merge in.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the manifest location relative to the extension root.
const DefaultPath = "extension.yaml"

var (
	// ErrNoScanDirs is returned when the manifest declares no scan directories.
	ErrNoScanDirs = errors.New("manifest declares no scan-dirs")
	// ErrInvalidScheme is returned when the URI scheme is missing or not a
	// short lowercase identifier.
	ErrInvalidScheme = errors.New("invalid manifest scheme")
	// ErrDuplicateEntry is returned when scan-dirs or includes repeat a path.
	ErrDuplicateEntry = errors.New("duplicate manifest entry")
)

// Manifest is the discovery declaration consumed by the host runtime.
type Manifest struct {
	// Name identifies the extension to the host.
	Name string `yaml:"name" json:"name"`
	// Version is the extension version advertised to the host.
	Version string `yaml:"version" json:"version"`
	// Scheme is the URI scheme for this extension's resources, kept short
	// and lowercase so it stays unique across co-hosted extensions.
	Scheme string `yaml:"scheme" json:"scheme"`
	// ScanDirs lists source directories the host scans for capabilities.
	ScanDirs []string `yaml:"scan-dirs" json:"scan-dirs"`
	// Includes lists extra configuration files merged at load time.
	Includes []string `yaml:"includes" json:"includes"`
}

// Load reads and validates a manifest file.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var mf Manifest
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return Manifest{}, fmt.Errorf("malformed manifest %s: %w", path, err)
	}

	if err := mf.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return mf, nil
}

// Validate checks the manifest invariants: a usable scheme, at least one
// scan directory, and no duplicate paths.
func (m Manifest) Validate() error {
	if !validScheme(m.Scheme) {
		return fmt.Errorf("%w: %q (want short lowercase identifier)", ErrInvalidScheme, m.Scheme)
	}
	if len(m.ScanDirs) == 0 {
		return ErrNoScanDirs
	}
	if d := firstDuplicate(m.ScanDirs); d != "" {
		return fmt.Errorf("%w: scan-dirs %s", ErrDuplicateEntry, d)
	}
	if d := firstDuplicate(m.Includes); d != "" {
		return fmt.Errorf("%w: includes %s", ErrDuplicateEntry, d)
	}
	return nil
}

// URI builds a resource URI under this manifest's scheme.
func (m Manifest) URI(path string) string {
	return m.Scheme + "://" + strings.TrimPrefix(path, "/")
}

// validScheme reports whether s is a short lowercase identifier suitable
// as a URI scheme. Letters only, starting the RFC 3986 way; digits and
// hyphens allowed after the first character.
func validScheme(s string) bool {
	if s == "" || len(s) > 32 {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

func firstDuplicate(paths []string) string {
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			return p
		}
		seen[p] = true
	}
	return ""
}
