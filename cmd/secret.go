package cmd

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/quillchat/quill/internal/logging"
	"github.com/quillchat/quill/internal/ui"
	"github.com/quillchat/quill/internal/utils"

	"github.com/spf13/cobra"
)

// SecretCmd exposes the device-bound encryption core directly, mainly for
// inspection and debugging of individual values.
var SecretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Encrypt or decrypt a single value with the device key",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
	},
}

func init() {
	SecretCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	SecretCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	SecretCmd.AddCommand(secretEncryptCmd)
	SecretCmd.AddCommand(secretDecryptCmd)
}

// secretArg returns the single positional argument, falling back to stdin
// so values can be piped without landing in shell history.
func secretArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := utils.ReadStdin()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

var secretEncryptCmd = &cobra.Command{
	Use:   "encrypt [value]",
	Short: "Encrypt a value and print the transport-encoded envelope",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := secretArg(args)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read value: %v", err)
		}

		keys, _, err := buildStores()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
		}

		encrypted, err := keys.EncryptToText(context.Background(), value)
		if err != nil {
			return Logger.ErrorfAndReturn("encryption failed: %v", err)
		}
		fmt.Println(encrypted)
		return nil
	},
}

var secretDecryptCmd = &cobra.Command{
	Use:   "decrypt [value]",
	Short: "Decrypt a transport-encoded envelope and print the value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := secretArg(args)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read value: %v", err)
		}

		keys, _, err := buildStores()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
		}

		decrypted, err := keys.DecryptFromText(context.Background(), value)
		if err != nil {
			Logger.Errorf("decryption failed: %v", err)
			fmt.Println(ui.Error.Sprint("✗") + " Could not decrypt: " + err.Error())
			return err
		}
		fmt.Println(decrypted)
		return nil
	},
}
