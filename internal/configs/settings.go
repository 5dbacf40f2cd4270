package configs

import (
	"log"
	"os"
	"path/filepath"
)

// UserSettings holds the resolved per-user paths for the application.
type UserSettings struct {
	// UserDataPath holds settings.json and key.salt.
	UserDataPath string

	// UserConfigsPath holds the CLI's own config.toml.
	UserConfigsPath string
}

var UserQuillSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	// This is independent of any working directory, so it is ok to init here.
	UserQuillSettings = &UserSettings{
		UserDataPath:    filepath.Join(dataDir, "quill"),
		UserConfigsPath: filepath.Join(configDir, "quill"),
	}
}

// DataPath returns the effective application data directory, honoring a
// data-dir override from the user config when present.
func DataPath() string {
	if GlobalUserConfig != nil && GlobalUserConfig.Preferences.DataDir != "" {
		return GlobalUserConfig.Preferences.DataDir
	}
	return UserQuillSettings.UserDataPath
}

// SettingsFilePath returns the path of the settings document.
func SettingsFilePath() string {
	return filepath.Join(DataPath(), "settings.json")
}
