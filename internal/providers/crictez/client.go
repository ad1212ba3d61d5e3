package crictez

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cricket-data-service/internal/domain/info"
	"cricket-data-service/internal/domain/live"
	"cricket-data-service/internal/domain/matches"
	"cricket-data-service/internal/providers"
)

// Config controls how the crictez client reaches the upstream API.
// BaseURL and APIKey are injected; nothing is compiled in.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches cricket data from the crictez API and maps it to domain
// models. The API key is a path segment on every endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a crictez client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchMatchList retrieves the home list of matches.
func (c *Client) FetchMatchList(ctx context.Context) ([]matches.Match, error) {
	req, err := c.buildListRequest(ctx)
	if err != nil {
		return nil, err
	}

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var list []matchResponse
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("crictez: decode match list: %w", err)
	}

	out := make([]matches.Match, 0, len(list))
	for _, m := range list {
		out = append(out, mapMatch(m))
	}
	return out, nil
}

// FetchLiveMatch retrieves the live snapshot for one match. The payload is
// returned in wire shape so callers can shallow-merge partial updates.
func (c *Client) FetchLiveMatch(ctx context.Context, matchID string) (live.Document, error) {
	req, err := c.buildFormRequest(ctx, pathLiveMatch, matchID)
	if err != nil {
		return nil, err
	}

	data, err := c.do(req)
	if err != nil {
		return nil, err
	}

	doc, err := live.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("crictez: decode live match: %w", err)
	}
	return doc, nil
}

// FetchMatchInfo retrieves the static reference bundle for one match.
func (c *Client) FetchMatchInfo(ctx context.Context, matchID string) (info.Bundle, error) {
	req, err := c.buildFormRequest(ctx, pathMatchInfo, matchID)
	if err != nil {
		return info.Bundle{}, err
	}

	data, err := c.do(req)
	if err != nil {
		return info.Bundle{}, err
	}

	var resp infoResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return info.Bundle{}, fmt.Errorf("crictez: decode match info: %w", err)
	}

	bundle := mapInfo(resp)
	if bundle.MatchID == "" {
		bundle.MatchID = matchID
	}
	return bundle, nil
}

func (c *Client) buildListRequest(ctx context.Context) (*http.Request, error) {
	endpoint, err := c.endpoint(pathHomeList)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) buildFormRequest(ctx context.Context, path, matchID string) (*http.Request, error) {
	if strings.TrimSpace(matchID) == "" {
		return nil, errors.New("crictez: empty match id")
	}
	endpoint, err := c.endpoint(path)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("match_id", matchID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) endpoint(path string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("crictez: api key not configured: %w", providers.ErrProviderUnavailable)
	}
	return c.baseURL + "/" + path + "/" + url.PathEscape(c.apiKey), nil
}

// do executes the request and unwraps the {data: ...} envelope.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("crictez: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("crictez: decode envelope: %w", err)
	}
	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return nil, errors.New("crictez: empty data payload")
	}
	return env.Data, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := time.ParseDuration(raw + "s"); err == nil {
		return secs
	}
	return 0
}
