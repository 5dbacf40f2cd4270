package workflows

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quillchat/quill/internal/configs"
	"github.com/quillchat/quill/internal/devicekey"
	logger "github.com/quillchat/quill/internal/logging"
)

func TestExportImport_CrossMachine(t *testing.T) {
	ctx := context.Background()

	// Machine A: configure a provider and export.
	dirA := t.TempDir()
	keysA := devicekey.NewKeyStore(dirA, devicekey.StaticSource("machine-a"))
	storeA := configs.NewSettingsStore(filepath.Join(dirA, "settings.json"), keysA, logger.Logger{})

	if _, err := AddProvider(ctx, storeA, AddProviderOptions{
		ProviderID: "openai",
		Name:       "OpenAI",
		APIKey:     "sk-travels-with-backup",
	}); err != nil {
		t.Fatal(err)
	}

	backupPath := filepath.Join(t.TempDir(), "settings.qbak")
	exported, err := Export(ctx, ExportOptions{
		Store:      storeA,
		OutputPath: backupPath,
		Passphrase: "travel pass",
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if exported.ProviderCount != 1 {
		t.Errorf("exported %d providers", exported.ProviderCount)
	}
	if exported.OutputPath != backupPath {
		t.Errorf("got output path %q", exported.OutputPath)
	}

	raw, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "sk-travels-with-backup") {
		t.Error("plaintext credential in backup file")
	}

	// Machine B: different device identity, fresh data dir.
	dirB := t.TempDir()
	keysB := devicekey.NewKeyStore(dirB, devicekey.StaticSource("machine-b"))
	storeB := configs.NewSettingsStore(filepath.Join(dirB, "settings.json"), keysB, logger.Logger{})

	imported, err := Import(ctx, ImportOptions{
		Store:      storeB,
		InputPath:  backupPath,
		Passphrase: "travel pass",
	})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imported.ProviderCount != 1 {
		t.Errorf("imported %d providers", imported.ProviderCount)
	}

	settings, err := storeB.Load(ctx)
	if err != nil {
		t.Fatalf("Load after import failed: %v", err)
	}
	provider := settings.FindProvider("OpenAI")
	if provider == nil {
		t.Fatal("provider missing after import")
	}
	if provider.APIKey != "sk-travels-with-backup" {
		t.Errorf("credential not restored: %q", provider.APIKey)
	}
}

func TestExport_EmptyPassphrase(t *testing.T) {
	store := newTestSettingsStore(t)
	_, err := Export(context.Background(), ExportOptions{Store: store, Passphrase: ""})
	if err == nil {
		t.Error("expected an error for an empty passphrase")
	}
}

func TestImport_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	store := newTestSettingsStore(t)

	backupPath := filepath.Join(t.TempDir(), "settings.qbak")
	if _, err := Export(ctx, ExportOptions{Store: store, OutputPath: backupPath, Passphrase: "right"}); err != nil {
		t.Fatal(err)
	}

	_, err := Import(ctx, ImportOptions{Store: store, InputPath: backupPath, Passphrase: "wrong"})
	if err == nil {
		t.Error("expected an error for a wrong passphrase")
	}
}

func TestImport_MissingFile(t *testing.T) {
	store := newTestSettingsStore(t)
	_, err := Import(context.Background(), ImportOptions{
		Store:      store,
		InputPath:  filepath.Join(t.TempDir(), "nope.qbak"),
		Passphrase: "pass",
	})
	if err == nil {
		t.Error("expected an error for a missing backup file")
	}
}
