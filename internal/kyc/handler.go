package kyc

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes KYC HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a KYC handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Show returns the registered mobile and verification status.
func (h *Handler) Show(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	status, err := h.service.Status(c.UserContext(), owner)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"mobile":     status.Mobile,
		"kyc_status": status.KYCStatus,
	})
}

type submitRequest struct {
	MobileLinkDeclaration bool `json:"mobile_link_declaration"`
	KYCDeclaration        bool `json:"kyc_declaration"`
}

// Submit starts the simulated verification.
func (h *Handler) Submit(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Submit(c.UserContext(), SubmitInput{
		Owner:               owner,
		MobileLinkDeclared:  req.MobileLinkDeclaration,
		KYCDeclarationGiven: req.KYCDeclaration,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDeclarationsRequired):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrAlreadySubmitted):
			return fiber.NewError(http.StatusConflict, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"kyc_status": StatusVerifying})
}
