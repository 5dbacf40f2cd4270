// Package devicekey provides device-bound encryption for secret strings.
//
// Secrets are protected at rest with a symmetric key derived from the host
// machine's identity, so a settings file copied off the machine (backups,
// synced folders, another host) cannot be decrypted elsewhere.
//
// # Key Derivation
//
// The key is a pure function of two inputs:
//
//  1. The machine identity, resolved per platform (see IdentitySource)
//  2. A random 16-byte salt persisted once per installation in key.salt
//
// key = SHA-256(identity ++ salt). The salt prevents precomputing the key
// from a guessable machine identity and ensures cloned machines derive
// different keys. The key itself is never written to disk.
//
// # Envelope Format
//
// Encryption uses AES-256-GCM with a fresh random 12-byte nonce per call
// and no associated data. The stored envelope is:
//
//	nonce (12 bytes) || ciphertext+tag
//
// encoded with standard padded base64 for embedding in text documents.
//
// # Threat Model
//
// This defends against casual disk exposure, not against an attacker who
// can run code as the same user on the same machine: such an attacker can
// re-derive the key exactly as the application does. Deleting key.salt
// permanently invalidates all previously encrypted secrets.
package devicekey
