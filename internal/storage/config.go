package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// ChromiumBookmarksPath points at a Chromium-family "Bookmarks" JSON
	// file. Empty = probe the default profile locations.
	ChromiumBookmarksPath string `json:"chromiumBookmarksPath"`

	// BookmarksHTMLPath points at a Netscape bookmarks HTML export, used
	// when no Chromium profile is found.
	BookmarksHTMLPath string `json:"bookmarksHtmlPath"`

	// HostFaviconTemplate is a printf template with a %s (escaped page URL)
	// and %d (pixel size) verb, e.g. a browser-provided favicon endpoint.
	// Empty = use the public favicon-by-domain service.
	HostFaviconTemplate string `json:"hostFaviconTemplate"`

	// IconSize is the requested favicon pixel size.
	IconSize int `json:"iconSize"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		IconSize: 64,
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Create the config file with defaults
			if saveErr := SaveConfig(path, &config); saveErr != nil {
				// Non-fatal: return defaults even if save fails
				return &config, nil
			}
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.IconSize <= 0 {
		config.IconSize = defaults.IconSize
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/minim/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "minim", "config.json"), nil
}
