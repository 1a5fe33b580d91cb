package middleware

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

func SetSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	secure := os.Getenv("GO_ENV") == "production"
	c.Cookie(&fiber.Cookie{
		Name: SessionCookie, Value: token, Expires: expires,
		HTTPOnly: true, Secure: secure, SameSite: "Lax", Path: "/",
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name: SessionCookie, Value: "", Expires: time.Now().Add(-1 * time.Hour),
		HTTPOnly: true, Path: "/",
	})
}
