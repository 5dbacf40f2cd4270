package cmd

import (
	logger "github.com/quillchat/quill/internal/logging"
	"github.com/spf13/cobra"
)

var ProvidersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage API provider credentials",
	Long:  `Adds, lists, and removes third-party API providers. Credentials are encrypted with the device key before they touch disk.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
	},
}

func init() {
	ProvidersCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	ProvidersCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	ProvidersCmd.AddCommand(providersAddCmd)
	ProvidersCmd.AddCommand(providersListCmd)
	ProvidersCmd.AddCommand(providersRemoveCmd)
	ProvidersCmd.AddCommand(providersSetKeyCmd)
}
