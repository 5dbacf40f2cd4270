// Package logger provides leveled logging for Quill CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// # Log Methods
//
//	Logger.Infof()        // Shown with --verbose
//	Logger.Debugf()       // Shown only with --debug
//	Logger.Warnf()        // Always shown on stderr
//	Logger.Errorf()       // Always shown on stderr
//	Logger.ErrorfAndReturn() // Logs and returns the error
//
// Commands typically create a logger in their PersistentPreRun and pass it
// to internal functions. Secret values must never be passed to the logger,
// in plaintext or ciphertext form.
package logger
