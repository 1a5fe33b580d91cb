package handlers

import (
	"log"

	"catden/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service error to its status and a safe client message.
func fail(c *fiber.Ctx, err error) error {
	status := apperrors.Status(err)
	if status == 500 {
		log.Printf("[API] %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"error": apperrors.Message(err)})
}
