package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/quillchat/quill/internal/backup"
	"github.com/quillchat/quill/internal/configs"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	// Store is the settings store to export.
	Store *configs.SettingsStore

	// OutputPath is the path for the backup file.
	// If empty, defaults to quill-settings-YYYY-MM-DD.qbak.
	OutputPath string

	// Passphrase protects the backup. Must not be empty.
	Passphrase string
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	// ProviderCount is the number of providers in the backup.
	ProviderCount int

	// OutputPath is the path to the created backup file.
	OutputPath string
}

// Export writes a passphrase-protected portable backup of the settings
// document. Credentials are decrypted under the device key and re-encrypted
// under the passphrase, so the backup can be imported on another machine.
func Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	if opts.Passphrase == "" {
		return nil, fmt.Errorf("backup passphrase must not be empty")
	}

	settings, err := opts.Store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = fmt.Sprintf("quill-settings-%s.qbak", time.Now().Format("2006-01-02"))
	}

	plaintext, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("serializing settings: %w", err)
	}

	sealed, err := backup.Encrypt(opts.Passphrase, plaintext)
	if err != nil {
		return nil, fmt.Errorf("sealing backup: %w", err)
	}

	if err := os.WriteFile(outputPath, sealed, 0600); err != nil {
		return nil, fmt.Errorf("writing backup: %w", err)
	}

	return &ExportResult{
		ProviderCount: len(settings.APIProviders),
		OutputPath:    outputPath,
	}, nil
}

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// Store is the settings store to import into.
	Store *configs.SettingsStore

	// InputPath is the backup file to read.
	InputPath string

	// Passphrase unlocks the backup.
	Passphrase string
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	// ProviderCount is the number of providers restored.
	ProviderCount int
}

// Import restores a backup created by Export, re-encrypting credentials
// under this machine's device key.
func Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	raw, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}

	plaintext, err := backup.Decrypt(opts.Passphrase, raw)
	if err != nil {
		return nil, fmt.Errorf("opening backup: %w", err)
	}

	var settings configs.AppSettings
	if err := json.Unmarshal(plaintext, &settings); err != nil {
		return nil, fmt.Errorf("parsing backup payload: %w", err)
	}

	if err := opts.Store.Save(ctx, &settings); err != nil {
		return nil, fmt.Errorf("saving settings: %w", err)
	}

	return &ImportResult{ProviderCount: len(settings.APIProviders)}, nil
}
