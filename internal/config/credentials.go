package config

import (
	"os"
	"strings"
)

// Provider identifies an external service whose credentials we manage.
type Provider string

const (
	ProviderGemini     Provider = "gemini"
	ProviderGroq       Provider = "groq"
	ProviderConvertKit Provider = "convertkit"
	ProviderResend     Provider = "resend"
)

// providerEnvVars maps each provider to the environment variable that holds
// its API key. Keys are read lazily because the hosting platform may inject
// them after process start.
var providerEnvVars = map[Provider]string{
	ProviderGemini:     "GEMINI_API_KEY",
	ProviderGroq:       "GROQ_API_KEY",
	ProviderConvertKit: "CONVERTKIT_API_KEY",
	ProviderResend:     "RESEND_API_KEY",
}

// Keys shorter than this are treated as unset; real keys are always longer.
const minKeyLength = 10

var placeholderMarkers = []string{
	"your_gemini_api_key_here",
	"your_groq_api_key_here",
	"placeholder",
}

// CredentialStore defines the interface for provider credential access.
type CredentialStore interface {
	// Key returns the trimmed API key for the provider, or "" if unset.
	Key(p Provider) string
	// IsConfigured reports whether the provider has a plausible, non-placeholder key.
	IsConfigured(p Provider) bool
}

// envCredentialStore is the implementation of CredentialStore backed by
// environment variables.
type envCredentialStore struct{}

// NewEnvCredentialStore creates a CredentialStore that reads the process
// environment on every call.
func NewEnvCredentialStore() CredentialStore {
	return &envCredentialStore{}
}

func (s *envCredentialStore) Key(p Provider) string {
	envVar, ok := providerEnvVars[p]
	if !ok {
		return ""
	}
	return strings.TrimSpace(os.Getenv(envVar))
}

func (s *envCredentialStore) IsConfigured(p Provider) bool {
	return keyLooksValid(s.Key(p))
}

// staticCredentialStore is a fixed-map CredentialStore, used in tests and
// anywhere credentials are supplied directly instead of via the environment.
type staticCredentialStore struct {
	keys map[Provider]string
}

// NewStaticCredentialStore creates a CredentialStore over a fixed key map.
func NewStaticCredentialStore(keys map[Provider]string) CredentialStore {
	return &staticCredentialStore{keys: keys}
}

func (s *staticCredentialStore) Key(p Provider) string {
	return strings.TrimSpace(s.keys[p])
}

func (s *staticCredentialStore) IsConfigured(p Provider) bool {
	return keyLooksValid(s.Key(p))
}

func keyLooksValid(key string) bool {
	if len(key) <= minKeyLength {
		return false
	}
	lower := strings.ToLower(key)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}
