package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kbrown517/Veteran-Compass-Corps/app/config"
	"github.com/kbrown517/Veteran-Compass-Corps/app/models"
)

func newTestOpenAIClient(server *httptest.Server) *OpenAIClient {
	return &OpenAIClient{
		baseURL:    server.URL,
		apiKey:     "test-key",
		model:      "gpt-5.2",
		httpClient: server.Client(),
	}
}

func successPayload(text string) string {
	return `{"output":[{"type":"message","content":[{"type":"output_text","text":"` + text + `"}]}]}`
}

var testMessages = []models.Message{{Role: "user", Content: "What is a C&P exam?"}}

func TestCompleteSuccess(t *testing.T) {
	var got responsesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/responses" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(successPayload("A C&P exam evaluates your claimed conditions.")))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server)
	reply, err := client.Complete(context.Background(), "system prompt", testMessages, models.TierMember)
	if err != nil {
		t.Fatalf("Complete error = %v", err)
	}
	if reply != "A C&P exam evaluates your claimed conditions." {
		t.Fatalf("reply = %q", reply)
	}

	if got.Model != "gpt-5.2" {
		t.Fatalf("model = %q", got.Model)
	}
	if got.Temperature != 0.4 {
		t.Fatalf("temperature = %v, want 0.4", got.Temperature)
	}
	if got.MaxOutputTokens != 2500 {
		t.Fatalf("member budget = %d, want 2500", got.MaxOutputTokens)
	}
	if len(got.Input) != 2 || got.Input[0].Role != "system" || got.Input[0].Content != "system prompt" {
		t.Fatalf("system prompt must lead the input, got %+v", got.Input)
	}
	if got.Input[1] != (inputMessage{Role: "user", Content: "What is a C&P exam?"}) {
		t.Fatalf("conversation turn mangled: %+v", got.Input[1])
	}
}

func TestCompleteFreeBudget(t *testing.T) {
	var got responsesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(successPayload("ok")))
	}))
	defer server.Close()

	client := newTestOpenAIClient(server)
	if _, err := client.Complete(context.Background(), "p", testMessages, models.TierFree); err != nil {
		t.Fatalf("Complete error = %v", err)
	}
	if got.MaxOutputTokens != 1200 {
		t.Fatalf("free budget = %d, want 1200", got.MaxOutputTokens)
	}
}

func TestCompleteErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"throttled", http.StatusTooManyRequests, `{"error":{"message":"slow down","type":"rate_limit_exceeded"}}`, ErrProviderThrottled},
		{"bad key", http.StatusUnauthorized, `{"error":{"message":"invalid api key","type":"invalid_request_error"}}`, ErrProviderAuth},
		{"forbidden", http.StatusForbidden, `{"error":{"message":"no access","type":"invalid_request_error"}}`, ErrProviderAuth},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestOpenAIClient(server)
			_, err := client.Complete(context.Background(), "p", testMessages, models.TierFree)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCompleteEmptyOutput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no output", `{"output":[]}`},
		{"no message items", `{"output":[{"type":"reasoning","content":[]}]}`},
		{"empty text", `{"output":[{"type":"message","content":[{"type":"output_text","text":""}]}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestOpenAIClient(server)
			_, err := client.Complete(context.Background(), "p", testMessages, models.TierFree)
			if !errors.Is(err, ErrEmptyResponse) {
				t.Fatalf("error = %v, want ErrEmptyResponse", err)
			}
		})
	}
}

func TestNewOpenAIClientWithoutKey(t *testing.T) {
	if client := NewOpenAIClient(config.OpenAIConfig{Model: "gpt-5.2"}); client != nil {
		t.Fatal("missing API key must yield a nil client")
	}
}

func TestNewOpenAIClientDefaults(t *testing.T) {
	client := NewOpenAIClient(config.OpenAIConfig{APIKey: "k", Model: "gpt-5.2", BaseURL: "https://proxy.example/v1/"})
	if client.baseURL != "https://proxy.example/v1" {
		t.Fatalf("baseURL = %q, trailing slash must be trimmed", client.baseURL)
	}
	client = NewOpenAIClient(config.OpenAIConfig{APIKey: "k", Model: "gpt-5.2"})
	if client.baseURL != defaultOpenAIBaseURL {
		t.Fatalf("baseURL = %q, want default", client.baseURL)
	}
}
