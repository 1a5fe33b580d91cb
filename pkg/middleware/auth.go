package middleware

import (
	"catden/pkg/services"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the only identity carrier; there is no bearer-token path.
const SessionCookie = "session_id"

// Auth gates mutating and per-user routes. A missing, unknown, or expired
// session stops the request with 401 before any handler runs.
func Auth(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)

		user, expiresAt, err := auth.Authenticate(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "authentication required"})
		}

		// expiry slid forward server-side, keep the cookie in step
		SetSessionCookie(c, token, expiresAt)

		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)
		c.Locals("session_token", token)

		return c.Next()
	}
}
