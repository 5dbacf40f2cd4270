package configs

// ChatSettings are the user-editable defaults applied to new conversations.
type ChatSettings struct {
	Model        string   `json:"model"`
	Temperature  float64  `json:"temperature"`
	SystemPrompt *string  `json:"systemPrompt,omitempty"`
	MaxTokens    *int     `json:"maxTokens,omitempty"`
	TopP         *float64 `json:"topP,omitempty"`
}

// APIProviderConfig is one configured third-party API provider. APIKey holds
// the plaintext key in memory and the encrypted, transport-encoded form on
// disk; the settings store converts between the two.
type APIProviderConfig struct {
	ID         string  `json:"id"`
	ProviderID string  `json:"providerId"`
	Name       string  `json:"name"`
	APIKey     string  `json:"apiKey"`
	BaseURL    *string `json:"baseUrl,omitempty"`
}

// AppSettings is the full settings document persisted to settings.json.
type AppSettings struct {
	DefaultChatSettings ChatSettings        `json:"defaultChatSettings"`
	APIProviders        []APIProviderConfig `json:"apiProviders"`
	SendWithEnter       bool                `json:"sendWithEnter"`
}

// DefaultChatSettings returns the chat defaults for a fresh installation.
func DefaultChatSettings() ChatSettings {
	return ChatSettings{
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
	}
}

// DefaultAppSettings returns the settings document for a fresh installation.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		DefaultChatSettings: DefaultChatSettings(),
		APIProviders:        []APIProviderConfig{},
		SendWithEnter:       true,
	}
}

// FindProvider returns the provider matching id or name, or nil.
func (s *AppSettings) FindProvider(idOrName string) *APIProviderConfig {
	for i := range s.APIProviders {
		p := &s.APIProviders[i]
		if p.ID == idOrName || p.Name == idOrName {
			return p
		}
	}
	return nil
}
