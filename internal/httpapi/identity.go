package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/studyhall/internal/qa"
	"github.com/abhisek/studyhall/internal/store"
)

const localIdentity = "identity"

// identity reads the caller's verified identity from the X-User-ID and
// X-User-Role headers. An upstream identity service sets these after
// authenticating; this server never sees credentials.
func (s *Server) identity(c *fiber.Ctx) error {
	rawID := c.Get("X-User-ID")
	if rawID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing X-User-ID header")
	}
	userID, err := strconv.Atoi(rawID)
	if err != nil || userID <= 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid X-User-ID header")
	}

	role := store.Role(c.Get("X-User-Role"))
	if !role.Valid() {
		return fiber.NewError(fiber.StatusUnauthorized, "missing or invalid X-User-Role header")
	}

	c.Locals(localIdentity, qa.Identity{UserID: userID, Role: role})
	return c.Next()
}

// requireRole gates a route to one role. Runs after identity.
func (s *Server) requireRole(role store.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := identityFrom(c)
		if id.Role != role {
			return fiber.NewError(fiber.StatusForbidden, "insufficient role")
		}
		return c.Next()
	}
}

func identityFrom(c *fiber.Ctx) qa.Identity {
	id, _ := c.Locals(localIdentity).(qa.Identity)
	return id
}
