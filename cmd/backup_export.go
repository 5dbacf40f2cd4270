package cmd

import (
	"context"
	"fmt"

	"github.com/quillchat/quill/internal/ui"
	"github.com/quillchat/quill/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	exportOutputPath string
	exportPassphrase string
)

func init() {
	backupExportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "output path (default quill-settings-<date>.qbak)")
	backupExportCmd.Flags().StringVar(&exportPassphrase, "passphrase", "", "passphrase protecting the backup")
	if err := backupExportCmd.MarkFlagRequired("passphrase"); err != nil {
		panic(err)
	}
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export settings to a passphrase-protected backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting backup export command")
		spinner, cleanup := startSpinner("Exporting settings...", verbose)
		defer cleanup()

		_, store, err := buildStores()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
		}

		result, err := workflows.Export(context.Background(), workflows.ExportOptions{
			Store:      store,
			OutputPath: exportOutputPath,
			Passphrase: exportPassphrase,
		})
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Export failed: " + err.Error()
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Exported " +
			ui.Highlight.Sprint(fmt.Sprintf("%d providers", result.ProviderCount)) +
			" to " + ui.Path.Sprint(result.OutputPath)
		return nil
	},
}
