package cmd

import (
	"context"

	"github.com/quillchat/quill/internal/ui"
	"github.com/quillchat/quill/internal/workflows"

	"github.com/spf13/cobra"
)

var providersRemoveCmd = &cobra.Command{
	Use:   "remove <id-or-name>",
	Short: "Remove an API provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting providers remove command")
		spinner, cleanup := startSpinner("Removing provider...", verbose)
		defer cleanup()

		_, store, err := buildStores()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
		}

		if err := workflows.RemoveProvider(context.Background(), store, args[0]); err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to remove provider: " + err.Error()
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Removed provider " + ui.Highlight.Sprint(args[0])
		return nil
	},
}
