package cmd

import (
	logger "github.com/quillchat/quill/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	SettingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Inspect and edit the application settings",
		Long:  `Shows, edits, and repairs the settings document. API provider credentials are always stored encrypted under the device key.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing settings command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	SettingsCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SettingsCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	SettingsCmd.AddCommand(showCmd)
	SettingsCmd.AddCommand(setCmd)
	SettingsCmd.AddCommand(pathCmd)
	SettingsCmd.AddCommand(doctorCmd)
}

// ResetSettingsState resets package state between test invocations.
func ResetSettingsState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}

	if SettingsCmd != nil && SettingsCmd.PersistentFlags() != nil {
		SettingsCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
