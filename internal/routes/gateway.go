package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/gateway"
)

// RegisterGatewayRoutes wires the payment session endpoints.
func RegisterGatewayRoutes(r fiber.Router, h *gateway.Handler) {
	r.Get("/gateway/sessions/:sessionId", h.Show)
	r.Put("/gateway/sessions/:sessionId/method", h.SelectMethod)
	r.Post("/gateway/sessions/:sessionId/confirm", h.Confirm)
	r.Post("/gateway/sessions/:sessionId/cancel", h.Cancel)
}
