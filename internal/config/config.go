// Package config provides reading and writing of template configuration.
// Supports both global (~/.mcpext/config.yaml) and local (.mcpext/config.yaml).
// Reading: uses local if it exists, otherwise global. Files named by the
// discovery manifest's includes list are merged underneath at lowest
// priority. Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.mcpext/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is extension-specific config in .mcpext/config.yaml
	ScopeLocal
)

// Extension holds the identity advertised by the MCP server.
type Extension struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Log holds audit logging options.
type Log struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultName        = "example-extension"
	DefaultDescription = "Template MCP extension exposing example tools and resources"
)

// Config contains configuration for the extension template.
type Config struct {
	Extension Extension `yaml:"extension,omitempty"`
	Log       Log       `yaml:"log,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Name returns the extension name (defaults to DefaultName).
func (c *Config) Name() string {
	if c.Extension.Name == "" {
		return DefaultName
	}
	return c.Extension.Name
}

// Description returns the extension description (defaults to DefaultDescription).
func (c *Config) Description() string {
	if c.Extension.Description == "" {
		return DefaultDescription
	}
	return c.Extension.Description
}

// LogEnabled returns whether audit logging is enabled (defaults to true).
func (c *Config) LogEnabled() bool {
	if c.Log.Enabled == nil {
		return true
	}
	return *c.Log.Enabled
}

// LocalPath returns the path to the local (extension) config file.
func LocalPath() string {
	return filepath.Join(".mcpext", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.mcpext/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mcpext", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
// Files listed as includes (from the discovery manifest) are merged first,
// so scope files override them key by key.
//
// A .env file in the working directory is loaded best-effort beforehand;
// missing files are not an error.
func Load(includes ...string) (*Config, error) {
	_ = godotenv.Load()

	if _, err := os.Stat(LocalPath()); err == nil {
		return loadScope(ScopeLocal, includes)
	}
	return loadScope(ScopeGlobal, includes)
}

// LoadScope reads configuration from a specific scope, without includes.
func LoadScope(scope Scope) (*Config, error) {
	return loadScope(scope, nil)
}

func loadScope(scope Scope, includes []string) (*Config, error) {
	cfg := &Config{scope: scope}

	// Includes come from the discovery manifest. A missing include is a
	// misconfiguration, caught here at wiring time.
	for _, p := range includes {
		if err := cfg.mergeFile(p); err != nil {
			return nil, fmt.Errorf("manifest include: %w", err)
		}
	}

	path := pathForScope(scope)
	if path == "" {
		return cfg, nil
	}
	cfg.path = path

	if err := cfg.mergeFile(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFile unmarshals one YAML file over the current config. Keys present
// in the file win; absent keys keep whatever an earlier file set.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err != nil {
		return fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	return nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
