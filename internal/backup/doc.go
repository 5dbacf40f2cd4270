// Package backup provides passphrase-protected portable backups of the
// settings document.
//
// Device-bound secrets cannot move between machines: the device key is a
// function of the host's identity, so a copied settings file is permanently
// undecryptable elsewhere. A backup sidesteps this by re-encrypting the
// document under a key derived from a user-chosen passphrase (argon2id)
// with XChaCha20-Poly1305, framed as a magic prefix plus a JSON envelope
// that carries its own KDF parameters.
package backup
