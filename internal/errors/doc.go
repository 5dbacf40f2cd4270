// Package errors provides typed error values for the Quill application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Identity errors: Machine identity resolution failures (ErrIdentityUnavailable)
//   - Storage errors: Data directory issues (ErrStorageUnavailable)
//   - Crypto errors: Envelope and cipher failures (ErrAuthenticationFailed)
//   - Settings errors: Settings document issues (ErrSettingsCorrupt)
//   - Backup errors: Portable backup issues (ErrInvalidBackup)
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(envelope) <= NonceSize {
//	    return "", errors.ErrMalformedEnvelope
//	}
//
// Handle errors in the CLI layer:
//
//	plaintext, err := keys.DecryptFromText(ctx, text)
//	if errors.Is(err, qerrors.ErrAuthenticationFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading salt file: %w", errors.ErrStorageUnavailable)
package errors
