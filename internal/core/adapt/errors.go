package adapt

import (
	"fmt"

	"ai-adapt-reader/pkg/apperror/status"
)

// ValidationError rejects a request before any upstream call is made.
type ValidationError struct {
	Code   status.ErrorCode
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// UpstreamError is a non-success response from the generation provider,
// keeping the provider's own status code for the API layer to pass through.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
}

// NormalizationError means the model output could not be shaped at all,
// e.g. an empty response for a plain-text mode.
type NormalizationError struct {
	Reason string
	Raw    string
}

func (e *NormalizationError) Error() string { return e.Reason }

// SchemaError means the model output did not match the structured-lesson
// schema even after the one-shot salvage pass. Raw carries the full model
// text for diagnostics.
type SchemaError struct {
	Reason string
	Raw    string
}

func (e *SchemaError) Error() string { return e.Reason }
