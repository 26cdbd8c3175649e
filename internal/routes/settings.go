package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/identity"
)

// RegisterSettingsRoutes wires the account profile and security endpoints.
func RegisterSettingsRoutes(r fiber.Router, h *identity.Handler) {
	r.Get("/settings/profile", h.Show)
	r.Put("/settings/profile", h.Update)
	r.Put("/settings/password", h.ChangePassword)
	r.Put("/settings/avatar", h.UpdateAvatar)
}
