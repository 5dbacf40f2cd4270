package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UserConfig holds CLI preferences persisted in config.toml, separate from
// the application settings document.
type UserConfig struct {
	Preferences Preferences `toml:"preferences"`
}

type Preferences struct {
	// DataDir overrides the default application data directory.
	DataDir string `toml:"data_dir"`

	// OutputFormat selects the default output format ("text" or "json").
	OutputFormat string `toml:"output_format"`
}

var GlobalUserConfig *UserConfig

// LoadUserConfig loads the user configuration from the config file.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserQuillSettings.UserConfigsPath, "config.toml")

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserQuillSettings.UserConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// EnsureUserConfig loads the user configuration and installs it as the
// process-wide config.
func EnsureUserConfig() (*UserConfig, error) {
	config, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}
	GlobalUserConfig = config
	return config, nil
}

// GenerateProviderID generates a new unique ID for an API provider entry.
func GenerateProviderID() string {
	return uuid.New().String()
}
