package handlers

import (
	"catden/pkg/models"
	"catden/pkg/services"

	"github.com/gofiber/fiber/v2"
)

type CatsHandler struct {
	service services.CatService
}

func NewCats(service services.CatService) *CatsHandler {
	return &CatsHandler{service: service}
}

// GET /cats
func (h *CatsHandler) List(c *fiber.Ctx) error {
	cats, err := h.service.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cats)
}

// GET /cats/:id — an array with zero or one element, never a 404.
func (h *CatsHandler) Get(c *fiber.Ctx) error {
	cats, err := h.service.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(cats)
}

// POST /cats (auth) — id is chosen by the caller.
func (h *CatsHandler) Create(c *fiber.Ctx) error {
	var cat models.Cat
	if err := c.BodyParser(&cat); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	if err := h.service.Create(cat); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cat " + cat.ID + " added"})
}

// PUT /cats/:id (auth) — full update of all mutable fields.
func (h *CatsHandler) Replace(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.ReplaceCatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	if err := h.service.Replace(id, req); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cat " + id + " updated"})
}

// PATCH /cats/:id (auth) — only allow-listed fields present in the body.
func (h *CatsHandler) Patch(c *fiber.Ctx) error {
	id := c.Params("id")

	var req models.PatchCatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid JSON"})
	}

	if err := h.service.Patch(id, req); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cat " + id + " partially updated"})
}

// DELETE /cats/:id (auth) — reports deletion even for an absent id.
func (h *CatsHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cat " + id + " deleted"})
}
