package adapt

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ai-adapt-reader/config"
	coreadapt "ai-adapt-reader/internal/core/adapt"
	"ai-adapt-reader/pkg/apperror"
	"ai-adapt-reader/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

type auxiliary struct {
	Age          int `json:"age"`
	SectionIndex int `json:"section_index"`
}

type adaptRequest struct {
	Document  string    `json:"document"`
	Text      string    `json:"text"`
	Mode      string    `json:"mode"`
	Auxiliary auxiliary `json:"auxiliary"`
}

// Handler serves the adaptation endpoint.
type Handler struct {
	dispatcher *coreadapt.Dispatcher
}

func NewHandler(dispatcher *coreadapt.Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) HandleAdapt(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	var req adaptRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleAdapt, c, status.AdaptInvalidRequestBody, err.Error())
	}
	if req.Document == "" && strings.TrimSpace(req.Text) == "" {
		return apperror.BadRequest(config.ModuleAdapt, c, status.AdaptMissingDocument, "document or text is required")
	}

	var document []byte
	if req.Document != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Document)
		if err != nil {
			return apperror.BadRequest(config.ModuleAdapt, c, status.AdaptInvalidRequestBody, "document is not valid base64")
		}
		document = decoded
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.Cfg.Anthropic.Timeout)*time.Second)
	defer cancel()

	result, err := h.dispatcher.Adapt(ctx, coreadapt.Request{
		Document:     document,
		Text:         strings.TrimSpace(req.Text),
		Mode:         req.Mode,
		Age:          req.Auxiliary.Age,
		SectionIndex: req.Auxiliary.SectionIndex,
	})
	if err != nil {
		return writeAdaptError(c, err)
	}

	return apperror.Success(config.ModuleAdapt, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "adaptation complete",
		TrackingID: trackingID,
		Result:     resultPayload(result),
	})
}

// resultPayload flattens the tagged result into the wire form for its shape.
func resultPayload(res coreadapt.Result) fiber.Map {
	switch res.Shape {
	case coreadapt.ShapeChunkedMarkdown:
		return fiber.Map{
			"shape":   res.Shape,
			"content": res.Content,
			"chunks":  res.Chunks,
		}
	case coreadapt.ShapeStructuredLesson:
		return fiber.Map{
			"shape":  res.Shape,
			"lesson": res.Lesson,
		}
	default:
		return fiber.Map{
			"shape":   res.Shape,
			"text":    res.Text,
			"summary": res.Summary,
		}
	}
}

func writeAdaptError(c fiber.Ctx, err error) error {
	var validationErr *coreadapt.ValidationError
	if errors.As(err, &validationErr) {
		return apperror.BadRequest(config.ModuleAdapt, c, validationErr.Code, validationErr.Reason)
	}

	var upstreamErr *coreadapt.UpstreamError
	if errors.As(err, &upstreamErr) {
		return apperror.Upstream(config.ModuleAdapt, c, upstreamErr.StatusCode, status.AdaptUpstreamFailed, upstreamErr.Message)
	}

	var schemaErr *coreadapt.SchemaError
	if errors.As(err, &schemaErr) {
		return apperror.BadGateway(config.ModuleAdapt, c, status.AdaptMalformedOutput, schemaErr.Reason)
	}

	var normErr *coreadapt.NormalizationError
	if errors.As(err, &normErr) {
		return apperror.BadGateway(config.ModuleAdapt, c, status.AdaptMalformedOutput, normErr.Reason)
	}

	return apperror.InternalError(config.ModuleAdapt, c, err)
}
