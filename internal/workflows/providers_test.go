package workflows

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/quillchat/quill/internal/configs"
	"github.com/quillchat/quill/internal/devicekey"
	logger "github.com/quillchat/quill/internal/logging"

	qerrors "github.com/quillchat/quill/internal/errors"
)

func newTestSettingsStore(t *testing.T) *configs.SettingsStore {
	t.Helper()
	dir := t.TempDir()
	keys := devicekey.NewKeyStore(dir, devicekey.StaticSource("test-machine"))
	return configs.NewSettingsStore(filepath.Join(dir, "settings.json"), keys, logger.Logger{})
}

func TestAddProvider(t *testing.T) {
	store := newTestSettingsStore(t)
	ctx := context.Background()

	result, err := AddProvider(ctx, store, AddProviderOptions{
		ProviderID: "openai",
		Name:       "OpenAI",
		APIKey:     "sk-live-secret",
		BaseURL:    "https://api.openai.com/v1",
	})
	if err != nil {
		t.Fatalf("AddProvider failed: %v", err)
	}
	if result.ID == "" {
		t.Error("result has no ID")
	}

	settings, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	provider := settings.FindProvider("OpenAI")
	if provider == nil {
		t.Fatal("provider not found after add")
	}
	if provider.ID != result.ID {
		t.Errorf("ID mismatch: %q vs %q", provider.ID, result.ID)
	}
	if provider.APIKey != "sk-live-secret" {
		t.Errorf("got key %q", provider.APIKey)
	}
	if provider.BaseURL == nil || *provider.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("base URL not stored: %v", provider.BaseURL)
	}
}

func TestAddProvider_DuplicateName(t *testing.T) {
	store := newTestSettingsStore(t)
	ctx := context.Background()

	if _, err := AddProvider(ctx, store, AddProviderOptions{Name: "OpenAI"}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := AddProvider(ctx, store, AddProviderOptions{Name: "OpenAI"})
	if !errors.Is(err, qerrors.ErrProviderExists) {
		t.Errorf("got err=%v, want ErrProviderExists", err)
	}
}

func TestAddProvider_EmptyName(t *testing.T) {
	store := newTestSettingsStore(t)
	if _, err := AddProvider(context.Background(), store, AddProviderOptions{Name: "   "}); err == nil {
		t.Error("expected an error for a blank name")
	}
}

func TestRemoveProvider(t *testing.T) {
	store := newTestSettingsStore(t)
	ctx := context.Background()

	if _, err := AddProvider(ctx, store, AddProviderOptions{Name: "OpenAI"}); err != nil {
		t.Fatal(err)
	}
	if _, err := AddProvider(ctx, store, AddProviderOptions{Name: "Anthropic"}); err != nil {
		t.Fatal(err)
	}

	if err := RemoveProvider(ctx, store, "OpenAI"); err != nil {
		t.Fatalf("RemoveProvider failed: %v", err)
	}

	settings, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if settings.FindProvider("OpenAI") != nil {
		t.Error("removed provider still present")
	}
	if settings.FindProvider("Anthropic") == nil {
		t.Error("unrelated provider lost")
	}
}

func TestRemoveProvider_NotFound(t *testing.T) {
	store := newTestSettingsStore(t)
	err := RemoveProvider(context.Background(), store, "nope")
	if !errors.Is(err, qerrors.ErrProviderNotFound) {
		t.Errorf("got err=%v, want ErrProviderNotFound", err)
	}
}

func TestSetProviderKey(t *testing.T) {
	store := newTestSettingsStore(t)
	ctx := context.Background()

	if _, err := AddProvider(ctx, store, AddProviderOptions{Name: "OpenAI", APIKey: "sk-old"}); err != nil {
		t.Fatal(err)
	}
	if err := SetProviderKey(ctx, store, "OpenAI", "sk-new"); err != nil {
		t.Fatalf("SetProviderKey failed: %v", err)
	}

	settings, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := settings.FindProvider("OpenAI").APIKey; got != "sk-new" {
		t.Errorf("got key %q", got)
	}
}

func TestSetProviderKey_NotFound(t *testing.T) {
	store := newTestSettingsStore(t)
	err := SetProviderKey(context.Background(), store, "nope", "sk-x")
	if !errors.Is(err, qerrors.ErrProviderNotFound) {
		t.Errorf("got err=%v, want ErrProviderNotFound", err)
	}
}
