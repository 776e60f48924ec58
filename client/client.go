// Package client is the caller-side helper for the relay's three
// endpoints. It serializes arguments, issues the POST, and propagates
// server-supplied error messages uniformly. No retries and no timeout
// handling beyond the underlying transport's own.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"pagegen_server/internal/types"
)

// Response is the relay's reply: either a code bundle, or an in-body
// generation error (the relay reports generation failures at HTTP 200; the
// caller branches on the payload shape).
type Response struct {
	types.CodeBundle
	Error       string `json:"error,omitempty"`
	ErrorType   string `json:"errorType,omitempty"`
	RawResponse string `json:"rawResponse,omitempty"`
}

// Failed reports whether the relay returned a generation error instead of
// a code bundle.
func (r *Response) Failed() bool {
	return r.ErrorType == types.ErrorTypeGeneration
}

// Client calls the relay service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the relay at baseURL (e.g., "http://localhost:3001").
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// Generate requests a new page for the given prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (*Response, error) {
	return c.post(ctx, "/generate", map[string]any{
		"prompt": prompt,
	})
}

// Followup requests a change to a previously generated page.
func (c *Client) Followup(ctx context.Context, prompt string, code *types.CodeBundle) (*Response, error) {
	return c.post(ctx, "/followup", map[string]any{
		"prompt": prompt,
		"code":   code,
	})
}

// Retry re-requests generation after the relay returned unusable model
// output, passing the bad output back for correction.
func (c *Client) Retry(ctx context.Context, originalPrompt, badJSON string) (*Response, error) {
	return c.post(ctx, "/retry", map[string]any{
		"originalPrompt": originalPrompt,
		"badJson":        badJSON,
	})
}

func (c *Client) post(ctx context.Context, path string, payload map[string]any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Request to %s failed: %v", path, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return nil, fmt.Errorf("%s: %s", path, errBody.Error)
		}
		return nil, fmt.Errorf("%s: request failed with status %s", path, resp.Status)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: decoding response: %w", path, err)
	}
	return &out, nil
}
