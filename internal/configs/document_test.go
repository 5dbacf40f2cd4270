package configs

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	if settings.DefaultChatSettings.Model != "gpt-4o-mini" {
		t.Errorf("got model %q", settings.DefaultChatSettings.Model)
	}
	if settings.DefaultChatSettings.Temperature != 0.7 {
		t.Errorf("got temperature %v", settings.DefaultChatSettings.Temperature)
	}
	if settings.DefaultChatSettings.SystemPrompt != nil {
		t.Error("system prompt should default to unset")
	}
	if !settings.SendWithEnter {
		t.Error("SendWithEnter should default to true")
	}
}

func TestAppSettings_JSONFieldNames(t *testing.T) {
	settings := DefaultAppSettings()
	settings.APIProviders = append(settings.APIProviders, APIProviderConfig{
		ID:         "p1",
		ProviderID: "openai",
		Name:       "OpenAI",
		APIKey:     "encrypted-blob",
	})

	raw, err := json.Marshal(settings)
	if err != nil {
		t.Fatal(err)
	}
	s := string(raw)

	for _, field := range []string{
		`"defaultChatSettings"`, `"apiProviders"`, `"sendWithEnter"`,
		`"model"`, `"temperature"`,
		`"id"`, `"providerId"`, `"name"`, `"apiKey"`,
	} {
		if !strings.Contains(s, field) {
			t.Errorf("marshalled document missing %s", field)
		}
	}

	// Unset optional fields must be omitted entirely.
	for _, field := range []string{`"systemPrompt"`, `"maxTokens"`, `"topP"`, `"baseUrl"`} {
		if strings.Contains(s, field) {
			t.Errorf("unset optional field %s should be omitted", field)
		}
	}
}

func TestFindProvider(t *testing.T) {
	settings := DefaultAppSettings()
	settings.APIProviders = append(settings.APIProviders,
		APIProviderConfig{ID: "id-1", Name: "OpenAI"},
		APIProviderConfig{ID: "id-2", Name: "Anthropic"},
	)

	if p := settings.FindProvider("id-2"); p == nil || p.Name != "Anthropic" {
		t.Errorf("lookup by ID failed: %#v", p)
	}
	if p := settings.FindProvider("OpenAI"); p == nil || p.ID != "id-1" {
		t.Errorf("lookup by name failed: %#v", p)
	}
	if p := settings.FindProvider("nonexistent"); p != nil {
		t.Errorf("expected nil, got %#v", p)
	}
}
