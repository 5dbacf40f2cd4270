package devicekey

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"time"

	qerrors "github.com/quillchat/quill/internal/errors"
)

// defaultCommandTimeout bounds subprocess-based identity lookups so a stalled
// OS tool cannot hang the caller indefinitely.
const defaultCommandTimeout = 10 * time.Second

// IdentitySource resolves a reasonably stable identifier for the current host.
//
// Implementations must return a trimmed, non-empty string, or an error
// wrapping ErrIdentityUnavailable. A single failure is surfaced immediately
// and never retried: identity instability is itself meaningful and should not
// be silently masked.
type IdentitySource interface {
	MachineIdentity(ctx context.Context) (string, error)
}

// ForPlatform returns the identity source for the current operating system.
func ForPlatform() IdentitySource {
	switch runtime.GOOS {
	case "darwin":
		return &ioregSource{run: runCommand}
	case "windows":
		return &wmicSource{run: runCommand}
	default:
		// Linux and other Unix-likes carry a machine-id file.
		return &fileSource{paths: []string{
			"/etc/machine-id",
			"/var/lib/dbus/machine-id",
		}}
	}
}

// StaticSource returns an identity source that always resolves to id.
// Intended for tests and for pinning identity in controlled environments.
func StaticSource(id string) IdentitySource {
	return staticSource(id)
}

type staticSource string

func (s staticSource) MachineIdentity(_ context.Context) (string, error) {
	if s == "" {
		return "", qerrors.ErrIdentityUnavailable
	}
	return string(s), nil
}

// fileSource reads the machine identity from the first readable path.
type fileSource struct {
	paths []string
}

func (f *fileSource) MachineIdentity(_ context.Context) (string, error) {
	var lastErr error
	for _, path := range f.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		id := strings.TrimSpace(string(data))
		if id == "" {
			lastErr = fmt.Errorf("%s is empty", path)
			continue
		}
		return id, nil
	}
	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", qerrors.ErrIdentityUnavailable, lastErr)
	}
	return "", qerrors.ErrIdentityUnavailable
}

// commandRunner executes a command and returns its trimmed stdout.
type commandRunner func(ctx context.Context, name string, args ...string) (string, error)

func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%s timed out: %w", name, ctx.Err())
		}
		return "", fmt.Errorf("%s failed: %v: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// ioregSource extracts the IOPlatformUUID from the macOS I/O registry.
type ioregSource struct {
	run commandRunner
}

func (s *ioregSource) MachineIdentity(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "ioreg", "-rd1", "-c", "IOPlatformExpertDevice")
	if err != nil {
		return "", fmt.Errorf("%w: %v", qerrors.ErrIdentityUnavailable, err)
	}
	id, err := parseIoregOutput(out)
	if err != nil {
		return "", fmt.Errorf("%w: %v", qerrors.ErrIdentityUnavailable, err)
	}
	return id, nil
}

// parseIoregOutput locates the IOPlatformUUID line and extracts the quoted
// UUID value. The line is found by marker, not by position, since ioreg
// output ordering is not stable across OS releases.
func parseIoregOutput(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "IOPlatformUUID") {
			continue
		}
		// Line shape: "IOPlatformUUID" = "XXXXXXXX-XXXX-..."
		parts := strings.Split(line, "\"")
		if len(parts) < 4 {
			return "", fmt.Errorf("unexpected IOPlatformUUID line: %q", strings.TrimSpace(line))
		}
		id := strings.TrimSpace(parts[3])
		if id == "" {
			return "", fmt.Errorf("empty IOPlatformUUID value")
		}
		return id, nil
	}
	return "", fmt.Errorf("IOPlatformUUID not present in ioreg output")
}

// wmicSource extracts the product UUID from wmic on Windows.
type wmicSource struct {
	run commandRunner
}

var uuidShape = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

func (s *wmicSource) MachineIdentity(ctx context.Context) (string, error) {
	out, err := s.run(ctx, "wmic", "csproduct", "get", "UUID")
	if err != nil {
		return "", fmt.Errorf("%w: %v", qerrors.ErrIdentityUnavailable, err)
	}
	id, err := parseWmicOutput(out)
	if err != nil {
		return "", fmt.Errorf("%w: %v", qerrors.ErrIdentityUnavailable, err)
	}
	return id, nil
}

// parseWmicOutput scans wmic output for the first UUID-shaped token,
// skipping the UUID column header. Tokens are matched by shape rather than
// by line position since wmic formatting shifts between Windows versions.
func parseWmicOutput(out string) (string, error) {
	for _, field := range strings.Fields(out) {
		if strings.EqualFold(field, "UUID") {
			continue
		}
		if uuidShape.MatchString(field) {
			return field, nil
		}
	}
	return "", fmt.Errorf("no UUID token in wmic output")
}
