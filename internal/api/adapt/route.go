package adapt

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers the adaptation endpoint on the provided router.
func RegisterRoutes(r fiber.Router, h *Handler) {
	r.Post("/adapt", h.HandleAdapt)
}
