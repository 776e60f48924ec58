package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI implements Client over the OpenAI chat completion API. It is the
// alternative backend for deployments without a local model server.
type OpenAI struct {
	client      *openai.Client
	model       string
	temperature float64
}

// NewOpenAI returns a Client that calls OpenAI with the given API key and
// model. If model is empty, GPT-4o is used.
func NewOpenAI(apiKey, model string, temperature float64) *OpenAI {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAI{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
	}
}

// Generate sends the system directive and prompt as chat messages and
// returns the assistant reply. JSON response format is requested to mirror
// the Ollama format flag.
func (o *OpenAI) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			Temperature: float32(o.temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("openai returned an empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
