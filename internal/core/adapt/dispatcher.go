package adapt

import (
	"context"
	"errors"
	"fmt"

	"ai-adapt-reader/config"
	"ai-adapt-reader/internal/llm"
	"ai-adapt-reader/pkg/apperror/status"
	"ai-adapt-reader/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
)

// Dispatcher turns an adaptation request into a normalized result with
// exactly one upstream generation call. It keeps no copy of the document or
// the response.
type Dispatcher struct {
	client           llm.Client
	maxDocumentBytes int
}

// NewDispatcher wires a dispatcher to a generation client. The document
// ceiling comes from config.
func NewDispatcher(client llm.Client) *Dispatcher {
	return &Dispatcher{
		client:           client,
		maxDocumentBytes: config.Cfg.Adapt.MaxDocumentBytes,
	}
}

// Adapt validates the request, resolves its mode profile, performs the
// generation call, and normalizes the raw output into the profile's shape.
func (d *Dispatcher) Adapt(ctx context.Context, req Request) (Result, error) {
	if err := d.validate(req); err != nil {
		return Result{}, err
	}

	profile := d.resolveProfile(req)

	logger.WithFields(map[string]interface{}{
		"mode":          profile.ID,
		"shape":         profile.Shape,
		"document_size": len(req.Document),
		"section_index": req.SectionIndex,
	}).Infof("%v: dispatching adaptation", config.ModuleAdapt)

	raw, err := d.client.Generate(ctx, llm.GenerateRequest{
		Prompt:    profile.Prompt(req),
		Document:  req.Document,
		MediaType: "application/pdf",
	})
	if err != nil {
		var provErr *llm.ProviderError
		if errors.As(err, &provErr) {
			return Result{}, &UpstreamError{StatusCode: provErr.StatusCode, Message: provErr.Message}
		}
		return Result{}, &UpstreamError{StatusCode: 0, Message: err.Error()}
	}

	return Normalize(raw, profile.Shape)
}

// NextLesson generates the structured lesson for the cursor's current
// section and advances the cursor only when generation and normalization
// both succeed.
func (d *Dispatcher) NextLesson(ctx context.Context, document []byte, age int, cur *Cursor) (Result, error) {
	res, err := d.Adapt(ctx, Request{
		Document:     document,
		Mode:         ModeAutism,
		Age:          age,
		SectionIndex: cur.Index(),
	})
	if err != nil {
		return Result{}, err
	}
	cur.advance()
	return res, nil
}

// validate fails fast, before any network call, on missing, oversized or
// non-PDF input.
func (d *Dispatcher) validate(req Request) error {
	if len(req.Document) == 0 && req.Text == "" {
		return &ValidationError{Code: status.AdaptMissingDocument, Reason: "no document or text provided"}
	}
	if len(req.Document) > 0 {
		if d.maxDocumentBytes > 0 && len(req.Document) > d.maxDocumentBytes {
			return &ValidationError{
				Code:   status.AdaptDocumentTooLarge,
				Reason: fmt.Sprintf("document exceeds %d byte limit", d.maxDocumentBytes),
			}
		}
		if mt := mimetype.Detect(req.Document); !mt.Is("application/pdf") {
			return &ValidationError{
				Code:   status.AdaptUnsupportedMediaType,
				Reason: fmt.Sprintf("unsupported document type %q, expected application/pdf", mt.String()),
			}
		}
	}
	return nil
}

// resolveProfile picks the profile for the request's mode. Text-only
// requests with an unregistered mode belong to the reading-level category,
// whose default is moderate; everything else defaults to adhd.
func (d *Dispatcher) resolveProfile(req Request) Profile {
	if Known(req.Mode) {
		return Resolve(req.Mode)
	}
	if len(req.Document) == 0 {
		return ResolveLevel(req.Mode)
	}
	return Resolve(req.Mode)
}
