package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	UserIDHeader = "X-User-ID"
	userIDKey    = "userID"
)

// RequireUser rejects requests without a caller identity. Authentication
// happens upstream; this only scopes records to the forwarded user id.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get(UserIDHeader))
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "missing " + UserIDHeader + " header",
			})
		}
		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
