package handlers

import (
	"catden/pkg/middleware"
	"catden/pkg/models"
	"catden/pkg/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service services.AuthService
}

func NewAuth(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// POST /signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	if err := h.service.Signup(req); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Signup successful"})
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	user, token, expiresAt, err := h.service.Login(req)
	if err != nil {
		return fail(c, err)
	}

	middleware.SetSessionCookie(c, token, expiresAt)
	return c.JSON(fiber.Map{"message": "Login successful", "username": user.Username})
}

// POST /logout — safe to call without a session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(middleware.SessionCookie)
	if err := h.service.Logout(token); err != nil {
		return fail(c, err)
	}

	middleware.ClearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// GET /check-auth — always 200; the body carries the verdict.
func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	token := c.Cookies(middleware.SessionCookie)

	user, expiresAt, err := h.service.Authenticate(token)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	middleware.SetSessionCookie(c, token, expiresAt)
	return c.JSON(fiber.Map{"authenticated": true, "username": user.Username})
}
