package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/quillchat/quill/internal/ui"

	"github.com/spf13/cobra"
)

var showJSONOutput bool

func init() {
	showCmd.Flags().BoolVar(&showJSONOutput, "json", false, "output in JSON format")
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current application settings",
	Long: `Prints the chat defaults and configured API providers.

API keys are decrypted only to verify they are readable; output always
shows a masked form, never the key itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")
		spinner, cleanup := startSpinner("Loading settings...", verbose)
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

		// Never emit credentials, even in JSON mode.
		for i := range settings.APIProviders {
			settings.APIProviders[i].APIKey = ui.MaskSecret(settings.APIProviders[i].APIKey)
		}

		spinner.FinalMSG = ""

		if showJSONOutput {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(settings)
		}

		chat := settings.DefaultChatSettings
		fmt.Println(ui.Info.Sprint("Chat defaults"))
		fmt.Printf("  model:           %s\n", ui.Highlight.Sprint(chat.Model))
		fmt.Printf("  temperature:     %g\n", chat.Temperature)
		if chat.SystemPrompt != nil {
			fmt.Printf("  system prompt:   %s\n", *chat.SystemPrompt)
		}
		if chat.MaxTokens != nil {
			fmt.Printf("  max tokens:      %d\n", *chat.MaxTokens)
		}
		if chat.TopP != nil {
			fmt.Printf("  top p:           %g\n", *chat.TopP)
		}
		fmt.Printf("  send with enter: %t\n", settings.SendWithEnter)

		fmt.Println()
		fmt.Println(ui.Info.Sprint("API providers"))
		if len(settings.APIProviders) == 0 {
			fmt.Println("  " + ui.Muted.Sprint("none configured"))
			return nil
		}
		for _, p := range settings.APIProviders {
			fmt.Printf("  %s %s\n", ui.Highlight.Sprint(p.Name), ui.Muted.Sprint(p.ID))
			fmt.Printf("    provider: %s\n", p.ProviderID)
			fmt.Printf("    api key:  %s\n", p.APIKey)
			if p.BaseURL != nil {
				fmt.Printf("    base url: %s\n", *p.BaseURL)
			}
		}
		return nil
	},
}
