package ui

import (
	"strings"
	"testing"
)

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{"short secret fully masked", "sk-ab", "********"},
		{"eight chars fully masked", "12345678", "********"},
		{"long secret keeps prefix", "sk-live-abcdef123456", "sk-l********"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaskSecret(tc.secret); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMaskSecret_NeverLeaksTail(t *testing.T) {
	secret := "sk-live-verysecretsuffix"
	masked := MaskSecret(secret)
	if strings.Contains(masked, "verysecretsuffix") {
		t.Errorf("masked value leaks the secret: %q", masked)
	}
}

func TestMaskSecret_Empty(t *testing.T) {
	got := MaskSecret("")
	if !strings.Contains(got, "not set") {
		t.Errorf("got %q, want a 'not set' placeholder", got)
	}
}

func TestEnsureNewline(t *testing.T) {
	if got := EnsureNewline("line"); got != "line\n" {
		t.Errorf("got %q", got)
	}
	if got := EnsureNewline("line\n"); got != "line\n" {
		t.Errorf("got %q", got)
	}
	if got := EnsureNewline(""); got != "\n" {
		t.Errorf("got %q", got)
	}
}
