package cmd

import (
	"context"
	"fmt"

	"github.com/quillchat/quill/internal/ui"

	"github.com/spf13/cobra"
)

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured API providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting providers list command")
		spinner, cleanup := startSpinner("Loading providers...", verbose)
		defer cleanup()

		_, store, err := buildStores()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
		}

		settings, err := store.Load(context.Background())
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to load settings: " + err.Error()
			return nil
		}

		spinner.FinalMSG = ""
		if len(settings.APIProviders) == 0 {
			fmt.Println(ui.Muted.Sprint("no providers configured"))
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("quill providers add --name <name> --key <key>") + " to add one")
			return nil
		}

		for _, p := range settings.APIProviders {
			fmt.Printf("%s %s\n", ui.Highlight.Sprint(p.Name), ui.Muted.Sprint(p.ID))
			fmt.Printf("  provider: %s\n", p.ProviderID)
			fmt.Printf("  api key:  %s\n", ui.MaskSecret(p.APIKey))
			if p.BaseURL != nil {
				fmt.Printf("  base url: %s\n", *p.BaseURL)
			}
		}
		return nil
	},
}
