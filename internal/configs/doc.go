// Package configs manages Quill's persisted configuration.
//
// Two documents live side by side:
//
//   - settings.json in the application data directory: the user-editable
//     application settings (chat defaults, API providers). Provider API
//     keys are stored encrypted under the device key; SettingsStore
//     transparently encrypts on save and decrypts on load.
//   - config.toml in the user config directory: preferences of the CLI
//     itself (data directory override, default output format).
//
// # Path Resolution
//
// Paths follow platform conventions: the data directory under XDG_DATA_HOME
// (or ~/.local/share), the config directory under os.UserConfigDir(). Both
// are resolved once at startup into UserQuillSettings.
//
// # Degradation Policy
//
// A single credential that fails to decrypt is replaced with an empty key
// and reported by provider name; the rest of the document loads normally.
// A credential that fails to encrypt aborts the save entirely.
package configs
