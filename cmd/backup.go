package cmd

import (
	logger "github.com/quillchat/quill/internal/logging"
	"github.com/spf13/cobra"
)

var BackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import portable settings backups",
	Long: `Creates passphrase-protected backups of the settings document.

Device-bound secrets cannot be copied between machines; a backup re-encrypts
them under a passphrase so they can be restored on another host.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
	},
}

func init() {
	BackupCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	BackupCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	BackupCmd.AddCommand(backupExportCmd)
	BackupCmd.AddCommand(backupImportCmd)
}
