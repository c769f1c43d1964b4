package speech

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers both forms of the speech endpoint.
func RegisterRoutes(r fiber.Router, h *Handler) {
	r.Post("/speak", h.HandleSpeak)
	r.Get("/speak", h.HandleSpeakQuery)
}
