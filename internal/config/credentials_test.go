package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvCredentialStoreReadsLazily(t *testing.T) {
	store := NewEnvCredentialStore()

	t.Setenv("GEMINI_API_KEY", "")
	assert.False(t, store.IsConfigured(ProviderGemini))

	// A key injected after store construction must be visible.
	t.Setenv("GEMINI_API_KEY", "  injected-gemini-key-123  ")
	assert.Equal(t, "injected-gemini-key-123", store.Key(ProviderGemini))
	assert.True(t, store.IsConfigured(ProviderGemini))
}

func TestIsConfiguredRejectsPlaceholders(t *testing.T) {
	cases := map[string]string{
		"gemini placeholder": "your_gemini_api_key_here",
		"groq placeholder":   "your_groq_api_key_here",
		"marker in key":      "my-placeholder-key-value",
		"too short":          "short",
		"empty":              "",
		"whitespace":         "    ",
	}

	for name, key := range cases {
		t.Run(name, func(t *testing.T) {
			store := NewStaticCredentialStore(map[Provider]string{ProviderGroq: key})
			assert.False(t, store.IsConfigured(ProviderGroq))
		})
	}
}

func TestIsConfiguredAcceptsRealLookingKey(t *testing.T) {
	store := NewStaticCredentialStore(map[Provider]string{ProviderGroq: "gsk_abcdef123456789"})
	assert.True(t, store.IsConfigured(ProviderGroq))
}

func TestKeyUnknownProvider(t *testing.T) {
	store := NewEnvCredentialStore()
	assert.Empty(t, store.Key(Provider("unknown")))
	assert.False(t, store.IsConfigured(Provider("unknown")))
}
