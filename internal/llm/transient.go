package llm

import (
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Transient reports whether a backend error looks like a temporary outage
// (rate limit, gateway error, timeout). The relay never retries on its own;
// callers use this to hint that resubmitting the request may succeed.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "500 internal server error") ||
		strings.Contains(errMsg, "502 bad gateway") ||
		strings.Contains(errMsg, "503 service unavailable") ||
		strings.Contains(errMsg, "504 gateway timeout") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset by peer") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return true
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		if openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429 {
			return true
		}
	}
	return false
}
