package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quillchat/quill/internal/configs"
	"github.com/quillchat/quill/internal/ui"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a chat default",
	Long: `Sets one field of the chat defaults and saves the settings document.

Fields:
  model             model identifier (e.g. gpt-4o-mini)
  temperature       sampling temperature (0.0 - 2.0)
  system-prompt     default system prompt (empty string clears it)
  max-tokens        response token limit (0 clears it)
  top-p             nucleus sampling parameter (0 clears it)
  send-with-enter   true or false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting set command")
		field, value := args[0], args[1]

		spinner, cleanup := startSpinner("Updating settings...", verbose)
		defer cleanup()

		_, store, err := buildStores()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
		}

		ctx := context.Background()
		settings, err := store.Load(ctx)
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to load settings: " + err.Error()
			return nil
		}

		if err := applyField(settings, field, value); err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error()
			return nil
		}

		if err := store.Save(ctx, settings); err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to save settings: " + err.Error()
			return nil
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Set " + ui.Highlight.Sprint(field) + " to " + ui.Highlight.Sprint(value)
		return nil
	},
}

func applyField(settings *configs.AppSettings, field, value string) error {
	switch field {
	case "model":
		if value == "" {
			return fmt.Errorf("model must not be empty")
		}
		settings.DefaultChatSettings.Model = value
	case "temperature":
		t, err := strconv.ParseFloat(value, 64)
		if err != nil || t < 0 || t > 2 {
			return fmt.Errorf("temperature must be a number between 0 and 2")
		}
		settings.DefaultChatSettings.Temperature = t
	case "system-prompt":
		if value == "" {
			settings.DefaultChatSettings.SystemPrompt = nil
		} else {
			settings.DefaultChatSettings.SystemPrompt = &value
		}
	case "max-tokens":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("max-tokens must be a non-negative integer")
		}
		if n == 0 {
			settings.DefaultChatSettings.MaxTokens = nil
		} else {
			settings.DefaultChatSettings.MaxTokens = &n
		}
	case "top-p":
		p, err := strconv.ParseFloat(value, 64)
		if err != nil || p < 0 || p > 1 {
			return fmt.Errorf("top-p must be a number between 0 and 1")
		}
		if p == 0 {
			settings.DefaultChatSettings.TopP = nil
		} else {
			settings.DefaultChatSettings.TopP = &p
		}
	case "send-with-enter":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("send-with-enter must be true or false")
		}
		settings.SendWithEnter = b
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}
