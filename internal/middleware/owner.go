package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/logismart/logismart/internal/profile"
)

const ownerHeader = "X-Profile-Owner"

// OwnerKey is the Locals key under which the resolved profile owner is stored.
const OwnerKey = "profile_owner"

// ProfileOwner resolves which dashboard profile a request operates on.
// Clients may select a profile via the X-Profile-Owner header; requests
// without one fall back to the shared default profile.
func ProfileOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := strings.TrimSpace(c.Get(ownerHeader))
		if owner == "" {
			owner = profile.DefaultOwner
		}

		c.Locals(OwnerKey, owner)

		return c.Next()
	}
}
