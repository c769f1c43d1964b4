// Package llm talks to the external generation provider. One call per
// request, no retries; failures carry the provider's HTTP status so the
// API layer can pass it through.
package llm

import (
	"context"
	"fmt"
)

// GenerateRequest is a single generation call: an instruction prompt plus an
// optional binary document attached as a base64 content block.
type GenerateRequest struct {
	Prompt      string
	Document    []byte
	MediaType   string
	MaxTokens   int
	Temperature float64
}

// Client produces raw model text for a request.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ProviderError is a non-success response from the external provider.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.StatusCode, e.Message)
}
