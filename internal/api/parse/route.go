package parse

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers the PDF extraction endpoint.
func RegisterRoutes(r fiber.Router, h *Handler) {
	r.Post("/parse", h.HandleParse)
}
