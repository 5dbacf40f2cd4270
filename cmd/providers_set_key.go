package cmd

import (
	"context"
	"strings"

	"github.com/quillchat/quill/internal/ui"
	"github.com/quillchat/quill/internal/utils"
	"github.com/quillchat/quill/internal/workflows"

	"github.com/spf13/cobra"
)

var setKeyValue string

func init() {
	providersSetKeyCmd.Flags().StringVar(&setKeyValue, "key", "", "API key (omit to read from stdin)")
}

var providersSetKeyCmd = &cobra.Command{
	Use:   "set-key <id-or-name>",
	Short: "Replace the credential of an API provider",
	Long: `Replaces the API key of an existing provider entry.

When --key is omitted the key is read from stdin, which keeps it out of
shell history:

  cat key.txt | quill providers set-key openai`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting providers set-key command")

		apiKey := setKeyValue
		if apiKey == "" {
			data, err := utils.ReadStdin()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read key from stdin: %v", err)
			}
			apiKey = strings.TrimSpace(string(data))
		}

		spinner, cleanup := startSpinner("Updating credential...", verbose)
		defer cleanup()

		_, store, err := buildStores()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
		}

		if err := workflows.SetProviderKey(context.Background(), store, args[0], apiKey); err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to set key: " + err.Error()
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Updated credential for " + ui.Highlight.Sprint(args[0])
		return nil
	},
}
