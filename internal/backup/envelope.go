package backup

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	qerrors "github.com/quillchat/quill/internal/errors"
)

const (
	envelopeVersion = 1
	saltSize        = 16
	filePrefix      = "QUILLBAK1\n"
)

// Envelope is the on-disk frame of a portable backup. Unlike the
// device-bound settings encryption, the key here is derived from a
// user-chosen passphrase, so the KDF parameters travel with the data.
type Envelope struct {
	Version     uint32 `json:"version"`
	KDF         string `json:"kdf"`
	KDFTime     uint32 `json:"kdf_time"`
	KDFMemoryKB uint32 `json:"kdf_memory_kb"`
	KDFThreads  uint8  `json:"kdf_threads"`
	Salt        []byte `json:"salt"`
	Nonce       []byte `json:"nonce"`
	Ciphertext  []byte `json:"ciphertext"`
}

// Encrypt seals plaintext under a passphrase-derived key and returns the
// framed backup file content.
func Encrypt(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("%w: generating salt: %v", qerrors.ErrCryptoFailed, err)
	}
	key := deriveKey(passphrase, salt)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrCryptoFailed, err)
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("%w: generating nonce: %v", qerrors.ErrCryptoFailed, err)
	}
	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	env := &Envelope{
		Version:     envelopeVersion,
		KDF:         "argon2id",
		KDFTime:     2,
		KDFMemoryKB: 64 * 1024,
		KDFThreads:  1,
		Salt:        salt,
		Nonce:       nonce,
		Ciphertext:  ciphertext,
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrCryptoFailed, err)
	}
	return append([]byte(filePrefix), raw...), nil
}

// Decrypt opens a backup produced by Encrypt. Returns ErrInvalidBackup when
// the frame is unrecognized and ErrAuthenticationFailed when the passphrase
// is wrong or the data was tampered with.
func Decrypt(passphrase string, data []byte) ([]byte, error) {
	if !strings.HasPrefix(string(data), filePrefix) {
		return nil, qerrors.ErrInvalidBackup
	}
	data = data[len(filePrefix):]

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrInvalidBackup, err)
	}
	if env.Version != envelopeVersion || env.KDF != "argon2id" {
		return nil, qerrors.ErrInvalidBackup
	}
	// The header fields came off disk; argon2 and the AEAD panic on
	// out-of-contract parameters, so reject them here instead.
	if len(env.Salt) == 0 || len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, qerrors.ErrInvalidBackup
	}
	if env.KDFTime < 1 || env.KDFThreads < 1 || env.KDFMemoryKB < 8*uint32(env.KDFThreads) {
		return nil, qerrors.ErrInvalidBackup
	}

	key := argon2.IDKey([]byte(passphrase), env.Salt, env.KDFTime, env.KDFMemoryKB, env.KDFThreads, chacha20poly1305.KeySize)
	defer zeroBytes(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrCryptoFailed, err)
	}
	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, qerrors.ErrAuthenticationFailed
	}
	return plaintext, nil
}

func deriveKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 2, 64*1024, 1, chacha20poly1305.KeySize)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
