package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/wallet"
)

// RegisterWalletRoutes wires the wallet balance and transaction log endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Get("/wallet", h.Show)
	r.Get("/wallet/transactions", h.Transactions)
}
