package errors

import "errors"

// Identity errors indicate the host machine identity could not be determined.
var (
	// ErrIdentityUnavailable indicates the platform machine-identity mechanism
	// was inaccessible, produced no output, or was missing the expected marker.
	ErrIdentityUnavailable = errors.New("machine identity is unavailable")
)

// Storage errors indicate issues with the application data directory.
var (
	// ErrStorageUnavailable indicates the application data directory could not
	// be resolved or created.
	ErrStorageUnavailable = errors.New("application data directory is unavailable")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrMalformedEnvelope indicates an encrypted envelope is too short to
	// contain a nonce and ciphertext.
	ErrMalformedEnvelope = errors.New("encrypted envelope is malformed")

	// ErrAuthenticationFailed indicates the AEAD tag did not verify. The key
	// is wrong or the ciphertext was corrupted or tampered with; the two cases
	// are indistinguishable.
	ErrAuthenticationFailed = errors.New("envelope authentication failed")

	// ErrInvalidEncoding indicates decrypted bytes were not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("decrypted data is not valid text")

	// ErrInvalidDecoding indicates transport decoding failed (characters
	// outside the base64 alphabet, or bad padding).
	ErrInvalidDecoding = errors.New("transport decoding failed")

	// ErrCryptoFailed indicates the underlying cipher operation failed.
	ErrCryptoFailed = errors.New("cipher operation failed")
)

// Settings errors indicate issues with the settings document.
var (
	// ErrSettingsCorrupt indicates the settings file could not be parsed.
	ErrSettingsCorrupt = errors.New("settings file is corrupt")

	// ErrProviderNotFound indicates the referenced API provider does not exist.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderExists indicates a provider with the same name already exists.
	ErrProviderExists = errors.New("provider already exists")
)

// Backup errors indicate issues with portable settings backups.
var (
	// ErrInvalidBackup indicates the backup file is not a recognized Quill
	// backup or its header is malformed.
	ErrInvalidBackup = errors.New("invalid backup file")
)
