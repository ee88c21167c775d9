package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".footprintscan"

// PlatformEntry describes one platform in a user-supplied catalog
// override. The "{username}" placeholder in either URL is replaced
// with the scan subject.
type PlatformEntry struct {
	// Name is the display name of the platform.
	Name string `yaml:"name"`

	// ProfileURL is the public profile URL template.
	ProfileURL string `yaml:"url"`

	// CheckURL is an optional existence-check endpoint template.
	CheckURL string `yaml:"checkUrl,omitempty"`
}

// File represents the structure of the .footprintscan configuration file.
type File struct {
	// BreachAPIKey is the API key for the breach-disclosure service.
	BreachAPIKey string `yaml:"breachApiKey,omitempty"`

	// Platforms overrides the built-in platform catalog when non-empty.
	// Catalog order is probe/output order.
	Platforms []PlatformEntry `yaml:"platforms,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound; callers
// decide whether that matters based on whether the path was explicit.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .footprintscan in the current directory
// 3. Look for .footprintscan in the user's home directory
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
