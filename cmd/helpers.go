package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/quillchat/quill/internal/configs"
	"github.com/quillchat/quill/internal/devicekey"
	"github.com/quillchat/quill/internal/ui"

	"github.com/briandowns/spinner"
)

// buildStores resolves the user config and constructs the key store and
// settings store every command operates on.
func buildStores() (*devicekey.KeyStore, *configs.SettingsStore, error) {
	if _, err := configs.EnsureUserConfig(); err != nil {
		return nil, nil, fmt.Errorf("loading user config: %w", err)
	}
	keys := devicekey.NewKeyStore(configs.DataPath(), devicekey.ForPlatform())
	store := configs.NewSettingsStore(configs.SettingsFilePath(), keys, Logger)
	return keys, store, nil
}

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup
// function calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}
