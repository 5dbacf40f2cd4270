package cmd

import (
	"context"

	"github.com/quillchat/quill/internal/ui"
	"github.com/quillchat/quill/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	addProviderID string
	addName       string
	addAPIKey     string
	addBaseURL    string
)

func init() {
	providersAddCmd.Flags().StringVar(&addProviderID, "provider", "", "upstream provider identifier (e.g. openai)")
	providersAddCmd.Flags().StringVar(&addName, "name", "", "display name for this entry")
	providersAddCmd.Flags().StringVar(&addAPIKey, "key", "", "API key (omit to add without a credential)")
	providersAddCmd.Flags().StringVar(&addBaseURL, "base-url", "", "optional endpoint override")
	if err := providersAddCmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}
}

var providersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an API provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting providers add command")
		spinner, cleanup := startSpinner("Adding provider...", verbose)
		defer cleanup()

		_, store, err := buildStores()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
		}

		result, err := workflows.AddProvider(context.Background(), store, workflows.AddProviderOptions{
			ProviderID: addProviderID,
			Name:       addName,
			APIKey:     addAPIKey,
			BaseURL:    addBaseURL,
		})
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to add provider: " + err.Error()
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Added provider " + ui.Highlight.Sprint(addName) +
			" " + ui.Muted.Sprint(result.ID)
		return nil
	},
}
