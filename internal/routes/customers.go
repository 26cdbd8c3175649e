package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/customers"
)

// RegisterCustomerRoutes wires the customer directory endpoints.
func RegisterCustomerRoutes(r fiber.Router, h *customers.Handler) {
	r.Post("/customers", h.Add)
	r.Get("/customers", h.List)
}
