package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds the tool defaults. They are read from the settings
// file first and then overridden by USDX_* environment variables, so
// a value can come from three places with rising precedence: the
// settings file, the environment, and finally command flags.
//
//	USDX_LIBRARY          default library root
//	USDX_STRICT           fail on header oddities instead of warning
//	USDX_VERBOSE          enable debug diagnostics on stderr
//	USDX_CRLF             write CRLF line endings on flush
//	USDX_BACKUP_SUFFIX    keep a backup of rewritten files
//	USDX_MAX_COVER_EDGE   cover scaling limit for stamp
//	USDX_SETTINGS         alternative settings file location
type Settings struct {
	Library      string `json:"library" envconfig:"LIBRARY"`
	Strict       bool   `json:"strict" envconfig:"STRICT"`
	Verbose      bool   `json:"verbose" envconfig:"VERBOSE"`
	CRLF         bool   `json:"crlf" envconfig:"CRLF"`
	BackupSuffix string `json:"backup_suffix" envconfig:"BACKUP_SUFFIX"`
	MaxCoverEdge int    `json:"max_cover_edge" envconfig:"MAX_COVER_EDGE"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Library:      ".",
		MaxCoverEdge: 1000,
	}
}

// loadSettings builds the effective settings: defaults, then the
// settings file, then USDX_* environment variables.
func loadSettings() (*Settings, error) {
	s, err := loadSettingsFile(settingsPath())
	if err != nil {
		return nil, err
	}
	if err := envconfig.Process("usdx", s); err != nil {
		return nil, err
	}
	return s, nil
}

// settingsPath locates the settings file. USDX_SETTINGS wins,
// otherwise it lives in the per-user config directory.
func settingsPath() string {
	if path := os.Getenv("USDX_SETTINGS"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "usdx-tool", "settings.json")
}

func loadSettingsFile(path string) (*Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return s, nil
}

// Save writes the settings to a JSON file.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
