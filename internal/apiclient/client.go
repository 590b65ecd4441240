// Package apiclient talks to a running nichefinder HTTP server.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/karolswdev/nichefinder/internal/profile"
)

// DefaultTimeout bounds a whole request. Analysis waits on the LLM, so it is generous.
const DefaultTimeout = 2 * time.Minute

// Client provides methods for interacting with the nichefinder HTTP API.
// It handles constructing requests, sending them to the configured server URL,
// and decoding the responses.
type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
}

// New creates a Client for the server at serverURL (e.g. "http://localhost:8080").
// It returns an error if the URL is missing or invalid.
func New(serverURL string) (*Client, error) {
	if serverURL == "" {
		return nil, ErrServerURLMissing
	}
	baseURL, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerURLParse, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("%w: %q must include scheme and host", ErrServerURLParse, serverURL)
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}, nil
}

// AnalyzeNiche sends p to POST /api/analyze-niche and returns the recommendations together
// with the source header. A 4xx/5xx answer is returned as ErrServerError carrying the
// server's message.
func (c *Client) AnalyzeNiche(ctx context.Context, p profile.UserProfile) (*AnalyzeResponse, error) {
	jsonData, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestMarshal, err)
	}

	endpointURL := c.BaseURL.ResolveReference(&url.URL{Path: "/api/analyze-niche"})

	log.Debug().RawJSON("request_body", jsonData).Str("url", endpointURL.String()).Msg("Sending AnalyzeNiche request")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL.String(), bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestCreate, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, serverError(resp.StatusCode, body)
	}

	out := &AnalyzeResponse{
		Source:    resp.Header.Get("X-Recommendation-Source"),
		RequestID: resp.Header.Get("X-Request-ID"),
	}
	if err := json.Unmarshal(body, &out.Recommendations); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResponseDecode, err)
	}
	return out, nil
}

// Health calls GET /health and returns nil when the server answers 200.
func (c *Client) Health(ctx context.Context) error {
	endpointURL := c.BaseURL.ResolveReference(&url.URL{Path: "/health"})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestCreate, err)
	}

	resp, body, err := c.do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode, body)
	}
	return nil
}

// do executes req and reads the whole body.
func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrRequestExecute, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrResponseDecode, err)
	}
	log.Debug().
		Str("url", req.URL.String()).
		Int("status_code", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("Received nichefinder API response")
	return resp, body, nil
}

func serverError(status int, body []byte) error {
	var errResp ErrorResponse
	if decodeErr := json.Unmarshal(body, &errResp); decodeErr == nil && errResp.Error != "" {
		return fmt.Errorf("%w: %s (status %d)", ErrServerError, errResp.Error, status)
	}
	return fmt.Errorf("%w (status %d)", ErrServerErrorUnparseable, status)
}
