package types

import "pagegen_server/internal/extract"

// ErrorTypeGeneration marks an in-body generation failure. The frontend
// branches on this marker rather than on the HTTP status, so generation
// failures are always reported at HTTP 200 with this payload.
const ErrorTypeGeneration = "GENERATION_ERROR"

// RawResponseLimit caps the raw model output echoed back for diagnosis.
const RawResponseLimit = 1000

// GenerationError is the payload returned when the backend call, JSON
// extraction, or bundle validation fails.
type GenerationError struct {
	Error       string `json:"error"`
	ErrorType   string `json:"errorType"`
	RawResponse string `json:"rawResponse"`
}

// NewGenerationError builds a generation-error payload, truncating the raw
// model output to RawResponseLimit.
func NewGenerationError(message, rawOutput string) *GenerationError {
	return &GenerationError{
		Error:       message,
		ErrorType:   ErrorTypeGeneration,
		RawResponse: extract.Truncate(rawOutput, RawResponseLimit),
	}
}
