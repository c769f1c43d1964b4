package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"ai-adapt-reader/config"
	"ai-adapt-reader/pkg/logger"
)

// Anthropic implements Client against the Anthropic messages API.
type Anthropic struct {
	apiKey  string
	baseURL string
	model   string
	version string
	client  *http.Client
}

// AnthropicOption configures an Anthropic client.
type AnthropicOption func(*Anthropic)

// WithBaseURL sets the base URL (for testing).
func WithBaseURL(url string) AnthropicOption {
	return func(a *Anthropic) {
		a.baseURL = url
	}
}

// WithModel overrides the configured model id.
func WithModel(model string) AnthropicOption {
	return func(a *Anthropic) {
		a.model = model
	}
}

// NewAnthropic creates a client from the anthropic config section.
func NewAnthropic(opts ...AnthropicOption) (*Anthropic, error) {
	cfg := config.Cfg.Anthropic
	if cfg.Key == "" {
		return nil, errors.New("anthropic API key is required")
	}
	a := &Anthropic{
		apiKey:  cfg.Key,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		version: cfg.Version,
		client:  &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *blockSource `json:"source,omitempty"`
}

type blockSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature,omitempty"`
	Messages    []message `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *Anthropic) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = config.Cfg.Anthropic.MaxTokens
	}

	var blocks []contentBlock
	if len(req.Document) > 0 {
		mediaType := req.MediaType
		if mediaType == "" {
			mediaType = "application/pdf"
		}
		blocks = append(blocks, contentBlock{
			Type: "document",
			Source: &blockSource{
				Type:      "base64",
				MediaType: mediaType,
				Data:      base64.StdEncoding.EncodeToString(req.Document),
			},
		})
	}
	blocks = append(blocks, contentBlock{Type: "text", Text: req.Prompt})

	body := messagesRequest{
		Model:       a.model,
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
		Messages:    []message{{Role: "user", Content: blocks}},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", a.version)

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var parsed messagesResponse
		msg := resp.Status
		if jsonErr := json.Unmarshal(respBody, &parsed); jsonErr == nil && parsed.Error != nil {
			msg = parsed.Error.Message
		}
		logger.WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"model":  a.model,
		}).Warnf("%v: provider returned non-success", config.ModuleLLM)
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}

	var parsed messagesResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}
	var out bytes.Buffer
	for _, block := range parsed.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: "no content from model"}
	}
	return out.String(), nil
}
