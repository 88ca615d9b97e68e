// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "extension.name").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"extension.name", "extension.description",
		"log.enabled",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "extension.name":
		return c.Name(), nil
	case "extension.description":
		return c.Description(), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "extension.name":
		if value == "" {
			return fmt.Errorf("%w: extension.name must not be empty", ErrInvalidValue)
		}
		c.Extension.Name = value
	case "extension.description":
		c.Extension.Description = value
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"extension.name":        c.Name(),
		"extension.description": c.Description(),
		"log.enabled":           strconv.FormatBool(c.LogEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "extension.name":
		return c.Extension.Name != ""
	case "extension.description":
		return c.Extension.Description != ""
	case "log.enabled":
		return c.Log.Enabled != nil
	}
	return false
}
