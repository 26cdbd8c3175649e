package wallet

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/profile"
)

// Handler exposes wallet read endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type transactionResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Method      string    `json:"method"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
}

// Show returns the wallet balance and spending limit.
func (h *Handler) Show(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	w, err := h.service.Snapshot(c.UserContext(), owner)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"balance":        w.Balance,
		"spending_limit": w.SpendingLimit,
		"currency":       "INR",
	})
}

// Transactions returns the ledger log, newest first.
func (h *Handler) Transactions(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	w, err := h.service.Snapshot(c.UserContext(), owner)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	items := make([]transactionResponse, 0, len(w.Transactions))
	for _, tx := range w.Transactions {
		items = append(items, toTransactionResponse(tx))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"transactions": items})
}

func toTransactionResponse(tx profile.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Date:        tx.Date,
		Description: tx.Description,
		Method:      tx.Method,
		Amount:      tx.Amount.StringFixed(2),
		Type:        tx.Type,
		Status:      tx.Status,
	}
}
