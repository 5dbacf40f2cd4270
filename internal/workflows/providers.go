package workflows

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillchat/quill/internal/configs"
	qerrors "github.com/quillchat/quill/internal/errors"
)

// AddProviderOptions configures the add-provider workflow.
type AddProviderOptions struct {
	// ProviderID identifies the upstream service (e.g. "openai").
	ProviderID string

	// Name is the user-facing display name; must be unique.
	Name string

	// APIKey is the plaintext credential. May be empty.
	APIKey string

	// BaseURL optionally overrides the provider endpoint.
	BaseURL string
}

// AddProviderResult contains the outcome of adding a provider.
type AddProviderResult struct {
	// ID is the generated unique ID of the new entry.
	ID string
}

// AddProvider appends a provider entry to the settings document and saves
// it, which encrypts the credential under the device key.
func AddProvider(ctx context.Context, store *configs.SettingsStore, opts AddProviderOptions) (*AddProviderResult, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, fmt.Errorf("provider name must not be empty")
	}

	settings, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	if settings.FindProvider(name) != nil {
		return nil, fmt.Errorf("%w: %s", qerrors.ErrProviderExists, name)
	}

	entry := configs.APIProviderConfig{
		ID:         configs.GenerateProviderID(),
		ProviderID: strings.TrimSpace(opts.ProviderID),
		Name:       name,
		APIKey:     opts.APIKey,
	}
	if url := strings.TrimSpace(opts.BaseURL); url != "" {
		entry.BaseURL = &url
	}

	settings.APIProviders = append(settings.APIProviders, entry)
	if err := store.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}

	return &AddProviderResult{ID: entry.ID}, nil
}

// RemoveProvider removes the provider matching idOrName and saves the
// document. Returns ErrProviderNotFound if no entry matches.
func RemoveProvider(ctx context.Context, store *configs.SettingsStore, idOrName string) error {
	settings, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	kept := settings.APIProviders[:0]
	removed := false
	for _, p := range settings.APIProviders {
		if !removed && (p.ID == idOrName || p.Name == idOrName) {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return fmt.Errorf("%w: %s", qerrors.ErrProviderNotFound, idOrName)
	}
	settings.APIProviders = kept

	if err := store.Save(ctx, settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// SetProviderKey replaces the credential of the provider matching idOrName
// and saves the document. An empty key clears the credential.
func SetProviderKey(ctx context.Context, store *configs.SettingsStore, idOrName, apiKey string) error {
	settings, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	provider := settings.FindProvider(idOrName)
	if provider == nil {
		return fmt.Errorf("%w: %s", qerrors.ErrProviderNotFound, idOrName)
	}
	provider.APIKey = apiKey

	if err := store.Save(ctx, settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
