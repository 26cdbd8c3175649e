package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/funding"
)

// RegisterFundingRoutes wires wallet top-up and withdrawal endpoints.
func RegisterFundingRoutes(r fiber.Router, h *funding.Handler) {
	r.Post("/wallet/topups", h.TopUp)
	r.Post("/wallet/withdrawals", h.Withdraw)
}
