// OpenAI Responses API client. Hand-rolled HTTP rather than an SDK so the
// same code talks to any compatible endpoint via OPENAI_BASE_URL.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kbrown517/Veteran-Compass-Corps/app/config"
	"github.com/kbrown517/Veteran-Compass-Corps/app/models"
)

// Completer produces the model's textual reply for a composed prompt and
// conversation, within the tier's output budget.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, messages []models.Message, tier models.Tier) (string, error)
}

// Provider failure kinds the orchestrator maps onto HTTP responses.
var (
	// ErrProviderUnavailable: no client could be constructed (missing
	// credential). Fatal per request, operator-fixable.
	ErrProviderUnavailable = errors.New("model provider not configured")
	// ErrProviderAuth: the provider rejected our credentials.
	ErrProviderAuth = errors.New("model provider authentication failed")
	// ErrProviderThrottled: provider-side rate limiting; the client may
	// retry after backoff.
	ErrProviderThrottled = errors.New("model provider rate limited")
	// ErrEmptyResponse: the provider returned no textual content.
	ErrEmptyResponse = errors.New("model provider returned no content")
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// completionTemperature keeps answers consistent and focused.
const completionTemperature = 0.4

// OpenAIClient calls the Responses API endpoint.
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAIClient builds the provider client, or returns nil when no API
// key is configured. Callers treat a nil client as ErrProviderUnavailable
// per request; the process itself keeps running.
func NewOpenAIClient(cfg config.OpenAIConfig) *OpenAIClient {
	if cfg.APIKey == "" {
		return nil
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type inputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responsesRequest struct {
	Model           string         `json:"model"`
	Input           []inputMessage `json:"input"`
	MaxOutputTokens int            `json:"max_output_tokens"`
	Temperature     float64        `json:"temperature"`
}

type responsesResponse struct {
	Output []outputItem `json:"output"`
}

type outputItem struct {
	Type    string          `json:"type"`
	Content []outputContent `json:"content"`
}

type outputContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type errorResponse struct {
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

// Complete sends the composed prompt plus conversation turns and extracts
// the reply text. Single attempt; retries belong to a resilience layer
// outside this service.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt string, messages []models.Message, tier models.Tier) (string, error) {
	input := make([]inputMessage, 0, len(messages)+1)
	input = append(input, inputMessage{Role: "system", Content: systemPrompt})
	for _, m := range messages {
		input = append(input, inputMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(responsesRequest{
		Model:           c.model,
		Input:           input,
		MaxOutputTokens: tier.MaxOutputTokens(),
		Temperature:     completionTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/responses", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyAPIError(resp.StatusCode, respBody)
	}

	var result responsesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	text := outputText(result)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// classifyAPIError maps provider status codes onto the error taxonomy so
// the handler can distinguish retryable throttling from misconfiguration.
func classifyAPIError(status int, body []byte) error {
	message := strings.TrimSpace(string(body))
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != nil {
		message = errResp.Error.Message
	}

	switch status {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrProviderThrottled, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrProviderAuth, message)
	default:
		return fmt.Errorf("model API error [%d]: %s", status, message)
	}
}

// outputText concatenates the output_text segments of message items.
func outputText(resp responsesResponse) string {
	var b strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				b.WriteString(content.Text)
			}
		}
	}
	return b.String()
}
