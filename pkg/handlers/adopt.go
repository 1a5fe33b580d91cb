package handlers

import (
	"catden/pkg/models"
	"catden/pkg/services"

	"github.com/gofiber/fiber/v2"
)

type AdoptHandler struct {
	service services.AdoptionService
}

func NewAdopt(service services.AdoptionService) *AdoptHandler {
	return &AdoptHandler{service: service}
}

// POST /adopt (auth)
func (h *AdoptHandler) Adopt(c *fiber.Ctx) error {
	var req models.AdoptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	userID := c.Locals("user_id").(int)
	if err := h.service.Adopt(userID, req.CatID); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cat " + req.CatID + " adopted"})
}

// GET /adopted (auth) — the caller's adoptions joined with current cat data.
func (h *AdoptHandler) ListAdopted(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	adopted, err := h.service.ListAdopted(userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(adopted)
}
