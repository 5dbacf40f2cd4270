package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/quillchat/quill/internal/configs"
	"github.com/quillchat/quill/internal/ui"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the paths Quill reads and writes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := configs.EnsureUserConfig(); err != nil {
			return Logger.ErrorfAndReturn("failed to load user config: %v", err)
		}

		fmt.Printf("data directory: %s\n", ui.Path.Sprint(configs.DataPath()))
		fmt.Printf("settings file:  %s\n", ui.Path.Sprint(configs.SettingsFilePath()))
		fmt.Printf("salt file:      %s\n", ui.Path.Sprint(filepath.Join(configs.DataPath(), "key.salt")))
		fmt.Printf("user config:    %s\n", ui.Path.Sprint(filepath.Join(configs.UserQuillSettings.UserConfigsPath, "config.toml")))
		return nil
	},
}
