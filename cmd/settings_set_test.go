package cmd

import (
	"testing"

	"github.com/quillchat/quill/internal/configs"
)

func TestApplyField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
		check   func(t *testing.T, s *configs.AppSettings)
	}{
		{
			name:  "model",
			field: "model", value: "gpt-4o",
			check: func(t *testing.T, s *configs.AppSettings) {
				if s.DefaultChatSettings.Model != "gpt-4o" {
					t.Errorf("got %q", s.DefaultChatSettings.Model)
				}
			},
		},
		{name: "empty model rejected", field: "model", value: "", wantErr: true},
		{
			name:  "temperature",
			field: "temperature", value: "1.5",
			check: func(t *testing.T, s *configs.AppSettings) {
				if s.DefaultChatSettings.Temperature != 1.5 {
					t.Errorf("got %v", s.DefaultChatSettings.Temperature)
				}
			},
		},
		{name: "temperature above range", field: "temperature", value: "2.5", wantErr: true},
		{name: "temperature below range", field: "temperature", value: "-0.1", wantErr: true},
		{name: "temperature not a number", field: "temperature", value: "hot", wantErr: true},
		{
			name:  "system prompt",
			field: "system-prompt", value: "be concise",
			check: func(t *testing.T, s *configs.AppSettings) {
				if s.DefaultChatSettings.SystemPrompt == nil || *s.DefaultChatSettings.SystemPrompt != "be concise" {
					t.Errorf("got %v", s.DefaultChatSettings.SystemPrompt)
				}
			},
		},
		{
			name:  "empty system prompt clears",
			field: "system-prompt", value: "",
			check: func(t *testing.T, s *configs.AppSettings) {
				if s.DefaultChatSettings.SystemPrompt != nil {
					t.Errorf("got %v", *s.DefaultChatSettings.SystemPrompt)
				}
			},
		},
		{
			name:  "max tokens",
			field: "max-tokens", value: "4096",
			check: func(t *testing.T, s *configs.AppSettings) {
				if s.DefaultChatSettings.MaxTokens == nil || *s.DefaultChatSettings.MaxTokens != 4096 {
					t.Errorf("got %v", s.DefaultChatSettings.MaxTokens)
				}
			},
		},
		{
			name:  "zero max tokens clears",
			field: "max-tokens", value: "0",
			check: func(t *testing.T, s *configs.AppSettings) {
				if s.DefaultChatSettings.MaxTokens != nil {
					t.Errorf("got %v", *s.DefaultChatSettings.MaxTokens)
				}
			},
		},
		{name: "negative max tokens rejected", field: "max-tokens", value: "-1", wantErr: true},
		{
			name:  "top-p",
			field: "top-p", value: "0.9",
			check: func(t *testing.T, s *configs.AppSettings) {
				if s.DefaultChatSettings.TopP == nil || *s.DefaultChatSettings.TopP != 0.9 {
					t.Errorf("got %v", s.DefaultChatSettings.TopP)
				}
			},
		},
		{name: "top-p above range", field: "top-p", value: "1.1", wantErr: true},
		{
			name:  "send with enter",
			field: "send-with-enter", value: "false",
			check: func(t *testing.T, s *configs.AppSettings) {
				if s.SendWithEnter {
					t.Error("still true")
				}
			},
		},
		{name: "send with enter not a bool", field: "send-with-enter", value: "maybe", wantErr: true},
		{name: "unknown field", field: "color-scheme", value: "dark", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := configs.DefaultAppSettings()
			err := applyField(settings, tc.field, tc.value)
			if tc.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("applyField failed: %v", err)
			}
			if tc.check != nil {
				tc.check(t, settings)
			}
		})
	}
}
