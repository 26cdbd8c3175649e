package funding

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/logismart/logismart/internal/wallet"
)

// Handler exposes HTTP endpoints for wallet funding flows.
type Handler struct {
	service *Service
}

// NewHandler constructs a funding handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TopUp opens a payment session for a wallet recharge. The wallet is
// only credited once the session completes.
func (h *Handler) TopUp(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	var req TopUpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid amount")
	}

	session, err := h.service.BeginTopUp(c.UserContext(), TopUpInput{Owner: owner, Amount: amount})
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidAmount) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusAccepted).JSON(TopUpResponse{
		SessionID:   session.ID(),
		State:       session.State().String(),
		Amount:      amount.StringFixed(2),
		AmountMinor: session.Amount(),
		Description: session.Description(),
	})
}

// Withdraw debits the wallet in favor of the linked bank account.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	var req WithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid amount")
	}

	tx, err := h.service.Withdraw(c.UserContext(), WithdrawInput{Owner: owner, Amount: amount})
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidAmount):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, wallet.ErrInsufficientFunds):
			return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusCreated).JSON(WithdrawResponse{
		TransactionID: tx.ID,
		Amount:        tx.Amount.StringFixed(2),
		Method:        tx.Method,
		Status:        tx.Status,
	})
}
