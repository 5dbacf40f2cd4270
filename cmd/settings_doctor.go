package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/quillchat/quill/internal/devicekey"
	"github.com/quillchat/quill/internal/ui"
	"github.com/quillchat/quill/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	doctorJSONOutput bool
	// doctorExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	doctorExitFunc = os.Exit
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSONOutput, "json", false, "output in JSON format")
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks on the local installation",
	Long: `Runs a series of health checks and reports issues.

The doctor command checks:
  - Machine identity resolution
  - Data directory writability
  - Salt file presence and length
  - Device-key encryption round-trip
  - Settings document parseability

Exit codes:
  0 - All checks passed
  1 - Warnings found (non-critical issues)
  2 - Errors found (critical issues)

Use --json for machine-readable output.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting doctor command")

	spinner, cleanup := startSpinner("Running health checks...", verbose)
	defer cleanup()

	keys, store, err := buildStores()
	if err != nil {
		return Logger.ErrorfAndReturn("failed to initialize stores: %v", err)
	}

	result, err := workflows.Doctor(context.Background(), workflows.DoctorOptions{
		Store:    store,
		Keys:     keys,
		Identity: devicekey.ForPlatform(),
	})
	if err != nil {
		spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to run health checks: " + err.Error()
		return err
	}

	for _, check := range result.Checks {
		Logger.Debugf("Check %s: status=%s, message=%s", check.Name, check.Status.String(), check.Message)
	}

	if doctorJSONOutput {
		spinner.FinalMSG = ""
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		printDoctorResults(result)
		if result.Summary.Errors > 0 {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Health checks completed with errors"
		} else if result.Summary.Warnings > 0 {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Health checks completed with warnings"
		} else {
			spinner.FinalMSG = ui.Success.Sprint("✓") + " Health checks completed"
		}
	}

	// Set exit code based on results.
	if result.Summary.Errors > 0 {
		doctorExitFunc(2)
	}
	if result.Summary.Warnings > 0 {
		doctorExitFunc(1)
	}
	return nil
}

// printDoctorResults prints the doctor results in a human-readable format.
func printDoctorResults(result *workflows.DoctorResult) {
	for _, check := range result.Checks {
		var statusIcon string
		switch check.Status {
		case workflows.CheckPass:
			statusIcon = ui.Success.Sprint("✓")
		case workflows.CheckWarning:
			statusIcon = ui.Warning.Sprint("⚠")
		case workflows.CheckError:
			statusIcon = ui.Error.Sprint("✗")
		}
		fmt.Printf("%s %s: %s\n", statusIcon, check.Name, check.Message)
		if check.Suggestion != "" {
			fmt.Printf("  %s %s\n", ui.Info.Sprint("→"), check.Suggestion)
		}
	}

	fmt.Println()
	fmt.Printf("%d passed, %d warnings, %d errors\n",
		result.Summary.Passed, result.Summary.Warnings, result.Summary.Errors)
}
