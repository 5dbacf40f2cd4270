package devicekey

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	qerrors "github.com/quillchat/quill/internal/errors"
)

const (
	// SaltSize is the length of a freshly generated salt in bytes.
	SaltSize = 16

	// SaltFileName is the name of the salt file inside the data directory.
	SaltFileName = "key.salt"
)

// KeyStore derives the device-bound encryption key from the host machine
// identity and a persisted random salt. It owns the resolved application
// data directory and is safe for concurrent use.
//
// The derived key is never persisted or cached: every operation recomputes
// it from the identity source and the salt file. Call volume is one
// operation per credential per settings load or save, so the repeated I/O
// and hashing cost is acceptable.
type KeyStore struct {
	dir    string
	source IdentitySource

	// mu serializes first-use salt creation within the process. Cross-process
	// races are handled by the exclusive link in ensureSalt.
	mu sync.Mutex
}

// NewKeyStore returns a KeyStore rooted at dir. The directory is created
// lazily on the first operation that needs the salt.
func NewKeyStore(dir string, source IdentitySource) *KeyStore {
	return &KeyStore{dir: dir, source: source}
}

// SaltPath returns the path of the salt file.
func (k *KeyStore) SaltPath() string {
	return filepath.Join(k.dir, SaltFileName)
}

// Dir returns the data directory the store was constructed with.
func (k *KeyStore) Dir() string {
	return k.dir
}

// Key derives the 32-byte device key: SHA-256(machine identity ++ salt).
//
// Deterministic given the same machine identity and an existing salt file.
// Returns ErrStorageUnavailable if the data directory cannot be created and
// ErrIdentityUnavailable if the machine identity cannot be resolved.
func (k *KeyStore) Key(ctx context.Context) ([]byte, error) {
	salt, err := k.ensureSalt()
	if err != nil {
		return nil, err
	}

	identity, err := k.source.MachineIdentity(ctx)
	if err != nil {
		return nil, err
	}

	h := sha256.New()
	h.Write([]byte(identity))
	h.Write(salt)
	return h.Sum(nil), nil
}

// EncryptToText encrypts plaintext under the device key and returns the
// envelope in transport encoding, ready to embed in a text document.
func (k *KeyStore) EncryptToText(ctx context.Context, plaintext string) (string, error) {
	key, err := k.Key(ctx)
	if err != nil {
		return "", err
	}
	envelope, err := Seal(key, plaintext)
	if err != nil {
		return "", err
	}
	return EncodeText(envelope), nil
}

// DecryptFromText reverses EncryptToText. The text is transport-decoded
// before the key is derived so obviously corrupt input fails fast without
// paying the identity lookup.
func (k *KeyStore) DecryptFromText(ctx context.Context, text string) (string, error) {
	envelope, err := DecodeText(text)
	if err != nil {
		return "", err
	}
	key, err := k.Key(ctx)
	if err != nil {
		return "", err
	}
	return Open(key, envelope)
}

// ensureSalt reads the salt file, creating it with fresh random bytes on
// first use. Creation is at-most-once: the salt is staged in a temp file and
// linked into place, so a concurrent creator either wins the link or adopts
// the winner's salt, and an interrupted write never leaves a truncated file.
//
// An existing salt file of any length is used as-is. A corrupted or
// truncated salt simply derives a key that cannot open previously encrypted
// data; the failure surfaces at the decrypt layer as an authentication
// error.
func (k *KeyStore) ensureSalt() ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	path := k.SaltPath()
	salt, err := os.ReadFile(path)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: reading salt file: %v", qerrors.ErrStorageUnavailable, err)
	}

	if err := os.MkdirAll(k.dir, 0700); err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrStorageUnavailable, err)
	}

	salt = make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("%w: generating salt: %v", qerrors.ErrCryptoFailed, err)
	}

	tmp, err := os.CreateTemp(k.dir, SaltFileName+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(salt); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("%w: writing salt: %v", qerrors.ErrStorageUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("%w: syncing salt: %v", qerrors.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing salt: %v", qerrors.ErrStorageUnavailable, err)
	}

	if err := os.Link(tmpName, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			// Another process established the salt first; use theirs.
			existing, readErr := os.ReadFile(path)
			if readErr != nil {
				return nil, fmt.Errorf("%w: reading salt file: %v", qerrors.ErrStorageUnavailable, readErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("%w: installing salt: %v", qerrors.ErrStorageUnavailable, err)
	}
	return salt, nil
}
