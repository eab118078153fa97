// Package fmcsa checks a trucking carrier's operating authority against the
// FMCSA QCMobile registry by MC (docket) number.
package fmcsa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"load-relay/internal/loads"
)

// DefaultBaseURL is the FMCSA docket-number lookup endpoint.
const DefaultBaseURL = "https://mobile.fmcsa.dot.gov/qc/services/carriers/docket-number"

const defaultTimeout = 10 * time.Second

// Config controls the registry client. WebKey is required; the rest default.
type Config struct {
	BaseURL string
	WebKey  string
	Timeout time.Duration
}

// Client is an HTTP adapter implementing loads.CarrierVerifier.
//
// Verdict policy (deny reasons are part of the workflow-facing contract):
// - non-200 status: no carrier found
// - empty or undecodable body: empty response
// - allowToOperate != "Y": inactive, with the registry's status echoed
// Transport failures are errors, not verdicts, and fail the whole request.
type Client struct {
	baseURL string
	webKey  string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		webKey:  cfg.WebKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// VerifyMC looks up the carrier and reports whether the call should abort.
func (c *Client) VerifyMC(ctx context.Context, mcNumber string) (loads.Verdict, error) {
	u := fmt.Sprintf("%s/%s?webKey=%s", c.baseURL, url.PathEscape(mcNumber), url.QueryEscape(c.webKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return loads.Verdict{}, fmt.Errorf("fmcsa: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return loads.Verdict{}, fmt.Errorf("fmcsa: lookup mc %s: %w", mcNumber, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return loads.Verdict{Abort: true, Reason: "Invalid MC number - no carrier found"}, nil
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || len(payload) == 0 {
		return loads.Verdict{Abort: true, Reason: "Invalid MC number - empty response"}, nil
	}

	if payload["allowToOperate"] != "Y" {
		status, _ := payload["status"].(string)
		return loads.Verdict{Abort: true, Reason: fmt.Sprintf("Carrier inactive - status=%s", status)}, nil
	}

	return loads.Verdict{}, nil
}
