package llm

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
)

// DefaultOllamaBaseURL is the base URL of a local Ollama server.
const DefaultOllamaBaseURL = "http://localhost:11434"

// Ollama implements Client against the Ollama /api/generate endpoint.
type Ollama struct {
	baseURL     string
	model       string
	temperature float64
	client      *http.Client
}

// NewOllama returns a Client that calls the Ollama server at baseURL with
// the given model. If baseURL is empty, DefaultOllamaBaseURL is used.
func NewOllama(baseURL, model string, temperature float64) *Ollama {
	u := strings.TrimSuffix(baseURL, "/")
	if u == "" {
		u = DefaultOllamaBaseURL
	}
	return &Ollama{
		baseURL:     u,
		model:       model,
		temperature: temperature,
		// Local inference can take a while on first model load; the timeout
		// only guards against a wedged server.
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system"`
	Prompt  string        `json:"prompt"`
	Format  string        `json:"format"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaGenerateResponse struct {
	// Pointer so an absent field is distinguishable from an empty reply.
	Response *string `json:"response"`
}

// Generate sends the system directive and prompt to Ollama and returns the
// free-text reply.
func (o *Ollama) Generate(ctx context.Context, system, prompt string) (string, error) {
	reqBody := ollamaGenerateRequest{
		Model:   o.model,
		System:  system,
		Prompt:  prompt,
		Format:  "json",
		Stream:  false,
		Options: ollamaOptions{Temperature: o.temperature},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := o.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ollama returned %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding ollama response: %w", err)
	}
	if out.Response == nil {
		return "", errors.New("ollama response is missing the \"response\" field")
	}
	return *out.Response, nil
}
