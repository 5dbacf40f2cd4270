package workflows

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quillchat/quill/internal/configs"
	"github.com/quillchat/quill/internal/devicekey"
	logger "github.com/quillchat/quill/internal/logging"
)

func newDoctorFixture(t *testing.T, identity string) DoctorOptions {
	t.Helper()
	dir := t.TempDir()
	keys := devicekey.NewKeyStore(dir, devicekey.StaticSource(identity))
	return DoctorOptions{
		Store:    configs.NewSettingsStore(filepath.Join(dir, "settings.json"), keys, logger.Logger{}),
		Keys:     keys,
		Identity: devicekey.StaticSource(identity),
	}
}

func findCheck(t *testing.T, result *DoctorResult, name string) CheckResult {
	t.Helper()
	for _, c := range result.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q", name)
	return CheckResult{}
}

func TestDoctor_FreshInstallPasses(t *testing.T) {
	opts := newDoctorFixture(t, "test-machine")

	result, err := Doctor(context.Background(), opts)
	if err != nil {
		t.Fatalf("Doctor failed: %v", err)
	}
	if result.Summary.Errors != 0 {
		t.Errorf("fresh install reported %d errors: %+v", result.Summary.Errors, result.Checks)
	}
	if result.Summary.Warnings != 0 {
		t.Errorf("fresh install reported %d warnings: %+v", result.Summary.Warnings, result.Checks)
	}
}

func TestDoctor_SaltNotYetEstablished(t *testing.T) {
	dir := t.TempDir()
	keys := devicekey.NewKeyStore(dir, devicekey.StaticSource("test-machine"))
	opts := DoctorOptions{
		Store:    configs.NewSettingsStore(filepath.Join(dir, "settings.json"), keys, logger.Logger{}),
		Keys:     keys,
		Identity: devicekey.StaticSource("test-machine"),
	}

	// Checks run in order; the salt check sees the pristine directory
	// before the round-trip check creates the salt.
	result, err := Doctor(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	salt := findCheck(t, result, "salt file")
	if salt.Status != CheckPass {
		t.Errorf("got status %v: %s", salt.Status, salt.Message)
	}
}

func TestDoctor_ShortSaltWarns(t *testing.T) {
	opts := newDoctorFixture(t, "test-machine")
	if err := os.MkdirAll(opts.Keys.Dir(), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(opts.Keys.SaltPath(), []byte("short"), 0600); err != nil {
		t.Fatal(err)
	}

	result, err := Doctor(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	salt := findCheck(t, result, "salt file")
	if salt.Status != CheckWarning {
		t.Errorf("got status %v: %s", salt.Status, salt.Message)
	}
	if result.Summary.Warnings == 0 {
		t.Error("summary did not count the warning")
	}
}

func TestDoctor_IdentityFailure(t *testing.T) {
	opts := newDoctorFixture(t, "test-machine")
	opts.Identity = devicekey.StaticSource("")

	result, err := Doctor(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	identity := findCheck(t, result, "machine identity")
	if identity.Status != CheckError {
		t.Errorf("got status %v: %s", identity.Status, identity.Message)
	}
	if result.Summary.Errors == 0 {
		t.Error("summary did not count the error")
	}
}

func TestDoctor_CorruptSettings(t *testing.T) {
	opts := newDoctorFixture(t, "test-machine")
	if err := os.MkdirAll(filepath.Dir(opts.Store.Path()), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(opts.Store.Path(), []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	result, err := Doctor(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	settings := findCheck(t, result, "settings document")
	if settings.Status != CheckError {
		t.Errorf("got status %v: %s", settings.Status, settings.Message)
	}
	if settings.Suggestion == "" {
		t.Error("corrupt settings should carry a recovery suggestion")
	}
}

func TestCheckStatus_JSON(t *testing.T) {
	raw, err := json.Marshal(CheckResult{Name: "x", Status: CheckWarning, Message: "m"})
	if err != nil {
		t.Fatal(err)
	}
	want := `"status":"warning"`
	if got := string(raw); !strings.Contains(got, want) {
		t.Errorf("marshalled check %s missing %s", got, want)
	}
}
