package main

import (
	"fmt"
	"os"

	"github.com/quillchat/quill/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Quill - settings and credential management for the Quill chat client.",
	Long: `Quill manages the chat client's local settings document and keeps API
provider credentials encrypted at rest with a device-bound key.

Secrets are bound to this machine: the encryption key is derived from the
host's identity and a local random salt, so a copied settings file cannot
be decrypted elsewhere. Use 'quill backup' for portable, passphrase-
protected copies.

Available Commands:
  settings    Inspect and edit the application settings
  providers   Manage API provider credentials
  backup      Export and import portable settings backups
  secret      Encrypt or decrypt a single value with the device key

Run 'quill help <command>' for more details on a specific command.
`,
	Run: func(c *cobra.Command, args []string) {
		figure.NewFigure("Quill", "", true).Print()
		fmt.Println("Run 'quill --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.SettingsCmd)
	rootCmd.AddCommand(cmd.ProvidersCmd)
	rootCmd.AddCommand(cmd.BackupCmd)
	rootCmd.AddCommand(cmd.SecretCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
