package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/shipments"
)

// RegisterShipmentRoutes wires shipment booking and listing endpoints.
func RegisterShipmentRoutes(r fiber.Router, h *shipments.Handler) {
	r.Post("/shipments", h.Create)
	r.Get("/shipments", h.List)
	r.Get("/shipments/quote", h.Quote)
}
