package gateway

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/wallet"
)

// Handler drives payer interaction with live payment sessions.
type Handler struct {
	gateway *Gateway
}

// NewHandler builds a gateway HTTP handler.
func NewHandler(gateway *Gateway) *Handler {
	return &Handler{gateway: gateway}
}

type sessionResponse struct {
	SessionID    string    `json:"session_id"`
	State        string    `json:"state"`
	Amount       string    `json:"amount"`
	AmountMinor  int64     `json:"amount_minor"`
	MerchantName string    `json:"merchant_name"`
	Description  string    `json:"description"`
	Method       string    `json:"method"`
	Methods      []string  `json:"methods"`
	OpenedAt     time.Time `json:"opened_at"`
}

// Show returns the session presented to the payer.
func (h *Handler) Show(c *fiber.Ctx) error {
	s, ok := h.gateway.Session(c.Params("sessionId"))
	if !ok {
		return fiber.NewError(http.StatusNotFound, "session not found")
	}
	return c.Status(http.StatusOK).JSON(toSessionResponse(s))
}

type selectMethodRequest struct {
	Method string `json:"method"`
}

// SelectMethod switches the presented payment method.
func (h *Handler) SelectMethod(c *fiber.Ctx) error {
	s, ok := h.gateway.Session(c.Params("sessionId"))
	if !ok {
		return fiber.NewError(http.StatusNotFound, "session not found")
	}
	var req selectMethodRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := s.SelectMethod(req.Method); err != nil {
		return sessionError(err)
	}
	return c.Status(http.StatusOK).JSON(toSessionResponse(s))
}

// Confirm triggers the pay action. Repeated confirmation while the
// session is processing is harmless.
func (h *Handler) Confirm(c *fiber.Ctx) error {
	s, ok := h.gateway.Session(c.Params("sessionId"))
	if !ok {
		return fiber.NewError(http.StatusNotFound, "session not found")
	}
	if err := s.Confirm(); err != nil {
		return sessionError(err)
	}
	return c.Status(http.StatusAccepted).JSON(toSessionResponse(s))
}

// Cancel dismisses an open session.
func (h *Handler) Cancel(c *fiber.Ctx) error {
	s, ok := h.gateway.Session(c.Params("sessionId"))
	if !ok {
		return fiber.NewError(http.StatusNotFound, "session not found")
	}
	if err := s.Cancel(); err != nil {
		return sessionError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"session_id": s.ID(), "state": StateCancelled.String()})
}

func toSessionResponse(s *Session) sessionResponse {
	return sessionResponse{
		SessionID:    s.ID(),
		State:        s.State().String(),
		Amount:       wallet.FromMinorUnits(s.Amount()).StringFixed(2),
		AmountMinor:  s.Amount(),
		MerchantName: s.MerchantName(),
		Description:  s.Description(),
		Method:       s.Method(),
		Methods:      s.Methods(),
		OpenedAt:     s.OpenedAt(),
	}
}

func sessionError(err error) error {
	switch {
	case errors.Is(err, ErrSessionProcessing):
		return fiber.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrSessionClosed):
		return fiber.NewError(http.StatusGone, err.Error())
	case errors.Is(err, ErrUnknownMethod):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
}
