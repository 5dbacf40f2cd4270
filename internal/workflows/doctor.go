package workflows

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/quillchat/quill/internal/configs"
	"github.com/quillchat/quill/internal/devicekey"
)

// CheckStatus represents the result status of a health check.
type CheckStatus int

const (
	// CheckPass means the check passed.
	CheckPass CheckStatus = iota
	// CheckWarning means the check found a non-critical issue.
	CheckWarning
	// CheckError means the check found a critical issue.
	CheckError
)

// String returns a string representation of CheckStatus.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarning:
		return "warning"
	case CheckError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for CheckStatus.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// CheckResult holds the result of a single health check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// DoctorResult holds the complete result of the doctor workflow.
type DoctorResult struct {
	Checks  []CheckResult `json:"checks"`
	Summary DoctorSummary `json:"summary"`
}

// DoctorSummary holds counts of checks by status.
type DoctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// DoctorOptions configures the doctor workflow.
type DoctorOptions struct {
	// Store is the settings store to inspect.
	Store *configs.SettingsStore

	// Keys is the key store to inspect.
	Keys *devicekey.KeyStore

	// Identity resolves the machine identity.
	Identity devicekey.IdentitySource
}

// Doctor runs health checks on the local installation.
//
// The doctor workflow checks:
//   - Machine identity resolution
//   - Data directory writability
//   - Salt file presence and length
//   - Device-key encryption round-trip
//   - Settings document parseability
func Doctor(ctx context.Context, opts DoctorOptions) (*DoctorResult, error) {
	result := &DoctorResult{}

	result.add(checkIdentity(ctx, opts.Identity))
	result.add(checkDataDir(opts.Keys.Dir()))
	result.add(checkSalt(opts.Keys))
	result.add(checkRoundTrip(ctx, opts.Keys))
	result.add(checkSettings(ctx, opts.Store))

	return result, nil
}

func (r *DoctorResult) add(c CheckResult) {
	r.Checks = append(r.Checks, c)
	switch c.Status {
	case CheckPass:
		r.Summary.Passed++
	case CheckWarning:
		r.Summary.Warnings++
	case CheckError:
		r.Summary.Errors++
	}
}

func checkIdentity(ctx context.Context, source devicekey.IdentitySource) CheckResult {
	id, err := source.MachineIdentity(ctx)
	if err != nil {
		return CheckResult{
			Name:       "machine identity",
			Status:     CheckError,
			Message:    fmt.Sprintf("could not resolve machine identity: %v", err),
			Suggestion: "check that the platform identity mechanism is readable",
		}
	}
	return CheckResult{
		Name:    "machine identity",
		Status:  CheckPass,
		Message: fmt.Sprintf("resolved (%d characters)", len(id)),
	}
}

func checkDataDir(dir string) CheckResult {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return CheckResult{
			Name:       "data directory",
			Status:     CheckError,
			Message:    fmt.Sprintf("cannot create %s: %v", dir, err),
			Suggestion: "check permissions of the parent directory",
		}
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return CheckResult{
			Name:       "data directory",
			Status:     CheckError,
			Message:    fmt.Sprintf("%s is not writable: %v", dir, err),
			Suggestion: "check permissions of the data directory",
		}
	}
	probe.Close()
	os.Remove(probe.Name())
	return CheckResult{
		Name:    "data directory",
		Status:  CheckPass,
		Message: dir,
	}
}

func checkSalt(keys *devicekey.KeyStore) CheckResult {
	info, err := os.Stat(keys.SaltPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return CheckResult{
				Name:    "salt file",
				Status:  CheckPass,
				Message: "not yet established (created on first encryption)",
			}
		}
		return CheckResult{
			Name:    "salt file",
			Status:  CheckError,
			Message: fmt.Sprintf("cannot stat %s: %v", keys.SaltPath(), err),
		}
	}
	if info.Size() != devicekey.SaltSize {
		return CheckResult{
			Name:       "salt file",
			Status:     CheckWarning,
			Message:    fmt.Sprintf("unexpected size %d bytes (expected %d)", info.Size(), devicekey.SaltSize),
			Suggestion: "previously encrypted secrets may be unrecoverable if the file was modified",
		}
	}
	return CheckResult{
		Name:    "salt file",
		Status:  CheckPass,
		Message: fmt.Sprintf("%s (%d bytes)", keys.SaltPath(), info.Size()),
	}
}

func checkRoundTrip(ctx context.Context, keys *devicekey.KeyStore) CheckResult {
	const probe = "doctor-self-test"
	encrypted, err := keys.EncryptToText(ctx, probe)
	if err != nil {
		return CheckResult{
			Name:    "encryption round-trip",
			Status:  CheckError,
			Message: fmt.Sprintf("encrypt failed: %v", err),
		}
	}
	decrypted, err := keys.DecryptFromText(ctx, encrypted)
	if err != nil {
		return CheckResult{
			Name:    "encryption round-trip",
			Status:  CheckError,
			Message: fmt.Sprintf("decrypt failed: %v", err),
		}
	}
	if decrypted != probe {
		return CheckResult{
			Name:    "encryption round-trip",
			Status:  CheckError,
			Message: "decrypted value does not match",
		}
	}
	return CheckResult{
		Name:    "encryption round-trip",
		Status:  CheckPass,
		Message: "ok",
	}
}

func checkSettings(ctx context.Context, store *configs.SettingsStore) CheckResult {
	settings, err := store.Load(ctx)
	if err != nil {
		return CheckResult{
			Name:       "settings document",
			Status:     CheckError,
			Message:    fmt.Sprintf("cannot load %s: %v", store.Path(), err),
			Suggestion: "the settings file may be corrupt; restore from a backup or delete it to reset",
		}
	}
	return CheckResult{
		Name:    "settings document",
		Status:  CheckPass,
		Message: fmt.Sprintf("%d providers configured", len(settings.APIProviders)),
	}
}
