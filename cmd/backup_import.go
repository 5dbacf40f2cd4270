package cmd

import (
	"context"
	"fmt"

	"github.com/quillchat/quill/internal/ui"
	"github.com/quillchat/quill/internal/workflows"

	"github.com/spf13/cobra"
)

var importPassphrase string

func init() {
	backupImportCmd.Flags().StringVar(&importPassphrase, "passphrase", "", "passphrase protecting the backup")
	if err := backupImportCmd.MarkFlagRequired("passphrase"); err != nil {
		panic(err)
	}
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore settings from a backup",
	Long: `Restores a backup created by export, replacing the current settings.

Credentials are re-encrypted under this machine's device key during import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting backup import command")
		spinner, cleanup := startSpinner("Importing settings...", verbose)
		defer cleanup()

		_, store, err := buildStores()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
		}

		result, err := workflows.Import(context.Background(), workflows.ImportOptions{
			Store:      store,
			InputPath:  args[0],
			Passphrase: importPassphrase,
		})
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Import failed: " + err.Error()
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Restored " +
			ui.Highlight.Sprint(fmt.Sprintf("%d providers", result.ProviderCount))
		return nil
	},
}
