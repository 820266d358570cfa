package api

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/services"
)

// ExperienceHandler serves /api/experience.
type ExperienceHandler struct {
	service services.IExperienceService
}

// NewExperienceHandler builds the experience API handler.
func NewExperienceHandler(db *gorm.DB) *ExperienceHandler {
	return &ExperienceHandler{service: services.NewExperienceService(db)}
}

// List handles GET /api/experience. Public callers pass ?visible=true; the
// admin listing omits the filter to include hidden entries.
func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	visibleOnly := c.Query("visible") == "true"
	experiences, err := h.service.ListExperiences(c.UserContext(), visibleOnly)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newExperienceViews(experiences))
}

// Create handles POST /api/experience (session required).
func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	var input services.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	experience, err := h.service.CreateExperience(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newExperienceView(*experience))
}

// Update handles PUT /api/experience/:id (session required, partial update).
func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusNotFound, "experience not found")
	}
	var update services.ExperienceUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	experience, err := h.service.UpdateExperience(c.UserContext(), uint(id), update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newExperienceView(*experience))
}

// Delete handles DELETE /api/experience/:id (session required).
func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusNotFound, "experience not found")
	}
	if err := h.service.DeleteExperience(c.UserContext(), uint(id)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(Envelope{Success: true})
}
