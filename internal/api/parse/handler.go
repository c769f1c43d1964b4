package parse

import (
	"context"
	"fmt"
	"io"
	"time"

	"ai-adapt-reader/config"
	"ai-adapt-reader/internal/core/extract"
	"ai-adapt-reader/pkg/apperror"
	"ai-adapt-reader/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

// Handler serves standalone PDF text extraction.
type Handler struct {
	service *extract.Service
}

func NewHandler(service *extract.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) HandleParse(c fiber.Ctx) error {
	trackingID := c.Get("X-Request-ID")

	fh, err := c.FormFile("file")
	if err != nil {
		return apperror.BadRequest(config.ModuleParse, c, status.ParseMissingFile, "file is required")
	}
	if fh.Size == 0 {
		return apperror.BadRequest(config.ModuleParse, c, status.ParseMissingFile, "empty file")
	}

	file, err := fh.Open()
	if err != nil {
		return apperror.BadRequest(config.ModuleParse, c, status.ParseMissingFile, "cannot open file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apperror.InternalError(config.ModuleParse, c, err)
	}

	useAI := c.FormValue("use_ai") == "1" || c.FormValue("use_ai") == "true"

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.Cfg.Anthropic.Timeout)*time.Second)
	defer cancel()

	result, err := h.service.Extract(ctx, data, useAI)
	if err != nil {
		code := fmt.Sprintf("AI-%d", status.ParseExtractFailed)
		return apperror.WriteError(config.ModuleParse, c, fiber.StatusInternalServerError, code, err.Error())
	}

	return apperror.Success(config.ModuleParse, c, apperror.FiberSuccessMessage{
		Code:       status.OK,
		Message:    "parse complete",
		TrackingID: trackingID,
		Result:     result,
	})
}
