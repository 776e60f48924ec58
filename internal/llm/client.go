// Package llm holds the inference backend clients. The relay issues exactly
// one outbound call per inbound request; there is no fallback chain and no
// internal retry.
package llm

import "context"

// Client sends a composed instruction plus a system directive to an
// inference backend and returns the raw reply text.
type Client interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}
