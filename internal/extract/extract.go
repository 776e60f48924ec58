// Package extract recovers a JSON object from free-form model output.
//
// Model replies routinely wrap the object in prose or markdown fences. The
// recovery is a deliberately naive single pass: slice between the first '{'
// and the last '}' and attempt a strict parse. It does not balance nested
// braces or handle braces inside string literals that happen to be outermost.
// The retry flow is built around exactly these failure modes, so this
// heuristic must not be replaced with a smarter bracket matcher.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoStructure reports input with no '{', no '}', or a '}' that precedes
// the first '{'.
var ErrNoStructure = errors.New("no JSON structure found")

// MalformedError reports a brace-delimited span that failed to parse. The
// span is retained (truncated) for diagnostics.
type MalformedError struct {
	Span string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed JSON: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// SpanDisplayLimit caps the length of the offending span kept on a
// MalformedError.
const SpanDisplayLimit = 1000

// FirstObject locates the outermost brace-delimited span in text and
// strictly parses it into v. It returns ErrNoStructure when no such span
// exists and a *MalformedError when the span is not valid JSON.
func FirstObject(text string, v any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < 0 || end < start {
		return ErrNoStructure
	}
	span := text[start : end+1]
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return &MalformedError{Span: Truncate(span, SpanDisplayLimit), Err: err}
	}
	return nil
}

// Truncate caps s at n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
