package logger

import (
	"io"
	"os"
	"strings"
	"testing"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestWarnf_UnconditionalRegardlessOfVerbosity(t *testing.T) {
	for _, l := range []Logger{{}, {Verbose: true}, {Debug: true}} {
		out := captureStderr(t, func() {
			l.Warnf("credential for %q could not be read", "OpenAI")
		})
		if !strings.Contains(out, "[warn]") || !strings.Contains(out, "OpenAI") {
			t.Errorf("verbose=%t debug=%t: warning suppressed, got %q", l.Verbose, l.Debug, out)
		}
	}
}

func TestErrorfAndReturn(t *testing.T) {
	l := Logger{}
	var err error
	out := captureStderr(t, func() {
		err = l.ErrorfAndReturn("loading settings: %s", "boom")
	})
	if err == nil || err.Error() != "loading settings: boom" {
		t.Errorf("got err=%v", err)
	}
	if !strings.Contains(out, "[error]") || !strings.Contains(out, "boom") {
		t.Errorf("error not logged, got %q", out)
	}
}
