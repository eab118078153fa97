// Package workflow delivers accepted call payloads to the downstream
// automation workflow over HTTP.
package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"load-relay/internal/loads"
)

const apiKeyHeader = "X-API-Key"

const defaultTimeout = 30 * time.Second

// Config controls the forwarder. URL and APIKey are required (validated by
// the config package at startup).
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client implements loads.Forwarder by POSTing the full call payload to the
// workflow endpoint with a static key header.
//
// Delivery is fire-and-forget: the downstream response status is not
// inspected, only transport failures surface. No retries; the voice workflow
// owns re-attempts at the call-type level.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) Forward(ctx context.Context, call loads.Call) error {
	body, err := json.Marshal(call)
	if err != nil {
		return fmt.Errorf("workflow: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("workflow: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("workflow: post to %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused. Status is deliberately ignored.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
