package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domainchat "cricket-data-service/internal/domain/chat"
)

// Both chat backends speak the OpenAI chat-completions protocol; they
// differ only in base URL, key and model, so one client type covers both.
const (
	completionTemperature = 0.7
	completionMaxTokens   = 800

	defaultCompletionTimeout = 30 * time.Second
)

// ClientConfig configures one chat-completions backend.
type ClientConfig struct {
	Name       string
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a chat-completions client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultCompletionTimeout}
	}
	return &Client{
		name:       cfg.Name,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: httpClient,
	}
}

// Name identifies the backend in logs and metrics.
func (c *Client) Name() string { return c.name }

type completionRequest struct {
	Model       string               `json:"model"`
	Messages    []domainchat.Message `json:"messages"`
	Temperature float64              `json:"temperature"`
	MaxTokens   int                  `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the transcript and returns the assistant's reply text.
func (c *Client) Complete(ctx context.Context, msgs []domainchat.Message) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%s: api key not configured", c.name)
	}

	payload, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%s: unexpected status %d: %s", c.name, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", c.name, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%s: empty choices in response", c.name)
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
