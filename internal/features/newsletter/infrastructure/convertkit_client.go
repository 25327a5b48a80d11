package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"chisokulab/backend/internal/config"
	"chisokulab/backend/internal/features/newsletter/domain"
)

const (
	convertKitBaseURL   = "https://api.convertkit.com/v3"
	convertKitFormIDEnv = "CONVERTKIT_FORM_ID"

	convertKitTimeout = 15 * time.Second
)

// convertKitResponse is the subset of ConvertKit's subscribe response we consume.
type convertKitResponse struct {
	Subscription struct {
		ID         int64  `json:"id"`
		State      string `json:"state"`
		Subscriber struct {
			EmailAddress string `json:"email_address"`
		} `json:"subscriber"`
	} `json:"subscription"`
}

type convertKitError struct {
	Message string `json:"message"`
}

// ConvertKitClient defines the interface for the ConvertKit subscribe API.
type ConvertKitClient interface {
	Subscribe(ctx context.Context, email, source string) (*domain.Subscription, error)
}

// convertKitClient is the implementation of ConvertKitClient. The API key
// and form ID are read on every call so lazily injected environment values
// are picked up.
type convertKitClient struct {
	creds      config.CredentialStore
	httpClient *http.Client
	baseURL    string
}

// NewConvertKitClient creates a new ConvertKit client.
func NewConvertKitClient(creds config.CredentialStore) ConvertKitClient {
	return &convertKitClient{
		creds:      creds,
		httpClient: &http.Client{Timeout: convertKitTimeout},
		baseURL:    convertKitBaseURL,
	}
}

// Subscribe adds the email to the configured ConvertKit form.
func (c *convertKitClient) Subscribe(ctx context.Context, email, source string) (*domain.Subscription, error) {
	apiKey := c.creds.Key(config.ProviderConvertKit)
	formID := strings.TrimSpace(os.Getenv(convertKitFormIDEnv))
	if apiKey == "" || formID == "" {
		return nil, fmt.Errorf("convertkit API key or form ID not configured")
	}

	form := url.Values{}
	form.Set("api_key", apiKey)
	form.Set("email", email)
	if source != "" {
		form.Set("fields[source]", source)
	}

	endpoint := fmt.Sprintf("%s/forms/%s/subscribe", c.baseURL, formID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build convertkit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("convertkit API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr convertKitError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("convertkit API error: %s", apiErr.Message)
		}
		return nil, fmt.Errorf("convertkit API error: %s", resp.Status)
	}

	var data convertKitResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode convertkit response: %w", err)
	}

	return &domain.Subscription{
		ID:              data.Subscription.ID,
		State:           data.Subscription.State,
		SubscriberEmail: data.Subscription.Subscriber.EmailAddress,
	}, nil
}
