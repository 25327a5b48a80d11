package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"chisokulab/backend/internal/config"
	tuningdomain "chisokulab/backend/internal/features/tuning/domain"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-2.0-flash-exp"

	geminiTimeout = 30 * time.Second
)

// geminiRequest is the generateContent request envelope.
type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float32 `json:"topP,omitempty"`
}

// geminiResponse is the subset of the generateContent response we consume.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// geminiClient is the Gemini implementation of TextGenerator. Auth is a URL
// query-parameter key; the key is read from the credential store on every
// call so that lazily injected environment values are picked up.
type geminiClient struct {
	creds      config.CredentialStore
	httpClient *http.Client
	baseURL    string
}

// NewGeminiClient creates a new Gemini text generator.
func NewGeminiClient(creds config.CredentialStore) TextGenerator {
	return &geminiClient{
		creds:      creds,
		httpClient: &http.Client{Timeout: geminiTimeout},
		baseURL:    geminiBaseURL,
	}
}

func (c *geminiClient) Name() string {
	return "gemini"
}

func (c *geminiClient) Generate(ctx context.Context, prompt string, settings tuningdomain.GenerationSettings) (string, error) {
	apiKey := c.creds.Key(config.ProviderGemini)
	if apiKey == "" {
		return "", fmt.Errorf("gemini API key not configured")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     settings.Temperature,
			MaxOutputTokens: settings.MaxTokens,
			TopP:            settings.TopP,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, geminiModel, url.QueryEscape(apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorText, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusTooManyRequests {
			var apiErr geminiErrorResponse
			if json.Unmarshal(errorText, &apiErr) == nil && apiErr.Error.Message != "" {
				return "", fmt.Errorf("gemini API quota exceeded: %s", apiErr.Error.Message)
			}
			return "", fmt.Errorf("gemini API quota exceeded, check quota limits or wait before retrying")
		}
		return "", fmt.Errorf("gemini API request failed: %d %s", resp.StatusCode, truncate(string(errorText), 200))
	}

	var data geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(data.Candidates) > 0 {
		parts := data.Candidates[0].Content.Parts
		if len(parts) > 0 && parts[0].Text != "" {
			return parts[0].Text, nil
		}
	}

	return "", fmt.Errorf("unexpected gemini API response format")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
