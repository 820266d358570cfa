package api

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/services"
)

// SkillHandler serves /api/skills.
type SkillHandler struct {
	service services.ISkillService
}

// NewSkillHandler builds the skill API handler.
func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{service: services.NewSkillService(db)}
}

// List handles GET /api/skills, ordered by category then in-category order.
func (h *SkillHandler) List(c *fiber.Ctx) error {
	skills, err := h.service.ListSkills(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, skills)
}

// Create handles POST /api/skills (session required).
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	var input services.SkillInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	skill, err := h.service.CreateSkill(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, skill)
}

// Update handles PUT /api/skills/:id (session required, partial update).
func (h *SkillHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusNotFound, "skill not found")
	}
	var update services.SkillUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	skill, err := h.service.UpdateSkill(c.UserContext(), uint(id), update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, skill)
}

// Delete handles DELETE /api/skills/:id (session required).
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusNotFound, "skill not found")
	}
	if err := h.service.DeleteSkill(c.UserContext(), uint(id)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(Envelope{Success: true})
}
