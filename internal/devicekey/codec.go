package devicekey

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"unicode/utf8"

	qerrors "github.com/quillchat/quill/internal/errors"
)

// NonceSize is the length of the random nonce prepended to every envelope.
const NonceSize = 12

// Seal encrypts plaintext with AES-256-GCM under key and returns the
// self-describing envelope: nonce ++ ciphertext+tag. A fresh random nonce is
// drawn for every call; no associated data is used.
func Seal(key []byte, plaintext string) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: generating nonce: %v", qerrors.ErrCryptoFailed, err)
	}

	// Seal appends to the nonce slice, producing nonce ++ ciphertext+tag.
	return aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

// Open decrypts an envelope produced by Seal. The leading NonceSize bytes
// are the nonce, the remainder ciphertext+tag.
//
// Returns ErrMalformedEnvelope if the envelope cannot contain a nonce,
// ErrAuthenticationFailed if the tag does not verify, and ErrInvalidEncoding
// if the decrypted bytes are not valid UTF-8. No partial plaintext is ever
// returned.
func Open(key, envelope []byte) (string, error) {
	if len(envelope) <= NonceSize {
		return "", qerrors.ErrMalformedEnvelope
	}

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce := envelope[:NonceSize]
	ciphertext := envelope[NonceSize:]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", qerrors.ErrAuthenticationFailed
	}
	if !utf8.Valid(plaintext) {
		return "", qerrors.ErrInvalidEncoding
	}
	return string(plaintext), nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrCryptoFailed, err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrCryptoFailed, err)
	}
	return aead, nil
}
