package speech

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-adapt-reader/config"
	corespeech "ai-adapt-reader/internal/core/speech"
	"ai-adapt-reader/pkg/apperror"
	"ai-adapt-reader/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

// Handler serves the speech synthesis endpoint.
type Handler struct {
	service *corespeech.Service
}

func NewHandler(service *corespeech.Service) *Handler {
	return &Handler{service: service}
}

// HandleSpeak accepts {text, voice?, model?} in the body.
func (h *Handler) HandleSpeak(c fiber.Ctx) error {
	var req corespeech.Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleSpeech, c, status.SpeechMissingText, err.Error())
	}
	return h.speak(c, req)
}

// HandleSpeakQuery is the query-parameter form of the same operation.
func (h *Handler) HandleSpeakQuery(c fiber.Ctx) error {
	req := corespeech.Request{
		Text:  c.Query("text"),
		Voice: c.Query("voice"),
		Model: c.Query("model"),
	}
	return h.speak(c, req)
}

func (h *Handler) speak(c fiber.Ctx, req corespeech.Request) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.Cfg.OpenAI.Timeout)*time.Second)
	defer cancel()

	resp, err := h.service.Synthesize(ctx, req)
	if err != nil {
		return writeSpeechError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func writeSpeechError(c fiber.Ctx, err error) error {
	if errors.Is(err, corespeech.ErrTextRequired) {
		return apperror.BadRequest(config.ModuleSpeech, c, status.SpeechMissingText, err.Error())
	}
	if errors.Is(err, corespeech.ErrEmptyAfterCleaning) {
		return apperror.BadRequest(config.ModuleSpeech, c, status.SpeechEmptyAfterCleaning, err.Error())
	}

	var voiceErr *corespeech.InvalidVoiceError
	if errors.As(err, &voiceErr) {
		return apperror.BadRequest(config.ModuleSpeech, c, status.SpeechInvalidVoice, voiceErr.Error())
	}

	var synthErr *corespeech.SynthesisError
	if errors.As(err, &synthErr) {
		code := fmt.Sprintf("AI-%d", status.SpeechSynthesisFailed)
		return apperror.WriteError(config.ModuleSpeech, c, fiber.StatusInternalServerError, code, synthErr.Error())
	}

	return apperror.InternalError(config.ModuleSpeech, c, err)
}
