package identity

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/profile"
)

// Handler exposes account settings endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a settings handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type userResponse struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	Avatar             string `json:"avatar,omitempty"`
	KYCStatus          string `json:"kyc_status,omitempty"`
	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
}

// Show returns the owner's account settings.
func (h *Handler) Show(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	user, err := h.service.Get(c.UserContext(), owner)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(toUserResponse(user))
}

type updateRequest struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	EmailNotifications bool   `json:"email_notifications"`
	SMSNotifications   bool   `json:"sms_notifications"`
}

// Update saves editable account fields.
func (h *Handler) Update(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.UserContext(), UpdateInput{
		Owner:              owner,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		EmailNotifications: req.EmailNotifications,
		SMSNotifications:   req.SMSNotifications,
	})
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(toUserResponse(user))
}

type changePasswordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ChangePassword updates the stored password hash.
func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err := h.service.ChangePassword(c.UserContext(), ChangePasswordInput{
		Owner:           owner,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrPasswordRequired), errors.Is(err, ErrPasswordMismatch), errors.Is(err, ErrPasswordTooShort):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"updated": true})
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// UpdateAvatar stores a new avatar reference.
func (h *Handler) UpdateAvatar(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	var req updateAvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.UpdateAvatar(c.UserContext(), owner, req.Avatar); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"updated": true})
}

func toUserResponse(user profile.User) userResponse {
	return userResponse{
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		Avatar:             user.Avatar,
		KYCStatus:          user.KYCStatus,
		EmailNotifications: user.Notifications.Email,
		SMSNotifications:   user.Notifications.SMS,
	}
}
