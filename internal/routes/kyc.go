package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/kyc"
)

// RegisterKYCRoutes wires the verification status and submission endpoints.
func RegisterKYCRoutes(r fiber.Router, h *kyc.Handler) {
	r.Get("/kyc", h.Show)
	r.Post("/kyc", h.Submit)
}
