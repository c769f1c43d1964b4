package healthcheck

import (
	"context"
	"time"

	"ai-adapt-reader/config"
	"ai-adapt-reader/internal/llm"
	"ai-adapt-reader/pkg/apperror"

	"github.com/gofiber/fiber/v3"
)

// Handler exposes liveness and upstream checks.
type Handler struct {
	client llm.Client
}

func NewHandler(client llm.Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) ApiHealthCheck(c fiber.Ctx) error {
	return c.SendString("ok")
}

// UpstreamHealthCheck issues a one-token generation to verify provider
// reachability and credentials.
func (h *Handler) UpstreamHealthCheck(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.client.Generate(ctx, llm.GenerateRequest{Prompt: "ping", MaxTokens: 1})
	if err != nil {
		return apperror.InternalError(config.ModuleLLM, c, err)
	}
	return c.SendString("ok")
}
