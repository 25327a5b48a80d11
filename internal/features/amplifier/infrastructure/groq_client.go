package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"chisokulab/backend/internal/config"
	tuningdomain "chisokulab/backend/internal/features/tuning/domain"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama-3.3-70b-versatile"

	groqTimeout = 30 * time.Second
)

// groqClient is the Groq implementation of TextGenerator. Groq speaks the
// OpenAI chat-completions protocol (bearer-token auth, choices/message
// envelope), so the adapter drives the go-openai client at Groq's base URL.
type groqClient struct {
	creds      config.CredentialStore
	httpClient *http.Client
	baseURL    string
}

// NewGroqClient creates a new Groq text generator.
func NewGroqClient(creds config.CredentialStore) TextGenerator {
	return &groqClient{
		creds:      creds,
		httpClient: &http.Client{Timeout: groqTimeout},
		baseURL:    groqBaseURL,
	}
}

func (c *groqClient) Name() string {
	return "groq"
}

func (c *groqClient) Generate(ctx context.Context, prompt string, settings tuningdomain.GenerationSettings) (string, error) {
	apiKey := c.creds.Key(config.ProviderGroq)
	if apiKey == "" {
		return "", fmt.Errorf("groq API key not configured")
	}

	// The client is rebuilt per call: the key is read lazily and may change
	// between requests on the hosting platform.
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = c.baseURL
	cfg.HTTPClient = c.httpClient
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: groqModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", fmt.Errorf("groq API quota exceeded: %w", err)
		}
		return "", fmt.Errorf("groq API request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("unexpected groq API response format")
	}

	return resp.Choices[0].Message.Content, nil
}
