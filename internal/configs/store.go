package configs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quillchat/quill/internal/devicekey"
	logger "github.com/quillchat/quill/internal/logging"

	qerrors "github.com/quillchat/quill/internal/errors"
)

// SettingsStore loads and saves the settings document, encrypting API
// provider credentials with the device key on the way to disk and
// decrypting them on the way back.
type SettingsStore struct {
	path   string
	keys   *devicekey.KeyStore
	logger logger.Logger
}

// NewSettingsStore returns a store for the settings document at path,
// using keys for credential encryption.
func NewSettingsStore(path string, keys *devicekey.KeyStore, log logger.Logger) *SettingsStore {
	return &SettingsStore{path: path, keys: keys, logger: log}
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.path
}

// Load reads the settings document. A missing or blank file yields the
// defaults. Each provider credential is decrypted independently: a
// credential that fails to decrypt is logged by provider name (never by
// value) and replaced with an empty key, so one corrupt entry cannot abort
// loading the whole document.
func (s *SettingsStore) Load(ctx context.Context) (*AppSettings, error) {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Infof("Settings file not found, returning defaults")
			return DefaultAppSettings(), nil
		}
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	if strings.TrimSpace(string(contents)) == "" {
		return DefaultAppSettings(), nil
	}

	var settings AppSettings
	if err := json.Unmarshal(contents, &settings); err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrSettingsCorrupt, err)
	}

	for i := range settings.APIProviders {
		provider := &settings.APIProviders[i]
		if provider.APIKey == "" {
			continue
		}
		decrypted, err := s.keys.DecryptFromText(ctx, provider.APIKey)
		if err != nil {
			// Identity and storage failures affect every credential alike;
			// surface them instead of silently emptying all keys.
			if errors.Is(err, qerrors.ErrIdentityUnavailable) || errors.Is(err, qerrors.ErrStorageUnavailable) {
				return nil, err
			}
			s.logger.Warnf("Failed to decrypt API key for provider %q: %v", provider.Name, err)
			provider.APIKey = ""
			continue
		}
		provider.APIKey = decrypted
	}

	return &settings, nil
}

// Save encrypts every non-empty provider credential and writes the document
// as pretty-printed JSON. Any encryption failure aborts the whole save: a
// document must never be persisted with a plaintext secret masquerading as
// encrypted, nor with a credential silently dropped.
func (s *SettingsStore) Save(ctx context.Context, settings *AppSettings) error {
	toSave := *settings
	toSave.APIProviders = make([]APIProviderConfig, len(settings.APIProviders))
	copy(toSave.APIProviders, settings.APIProviders)

	for i := range toSave.APIProviders {
		provider := &toSave.APIProviders[i]
		if provider.APIKey == "" {
			continue
		}
		encrypted, err := s.keys.EncryptToText(ctx, provider.APIKey)
		if err != nil {
			return fmt.Errorf("encrypting API key for provider %q: %w", provider.Name, err)
		}
		provider.APIKey = encrypted
	}

	serialized, err := json.MarshalIndent(&toSave, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("%w: %v", qerrors.ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(s.path, serialized, 0600); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
