package api

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/services"
)

// ProjectHandler serves /api/projects.
type ProjectHandler struct {
	service services.IProjectService
}

// NewProjectHandler builds the project API handler.
func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{service: services.NewProjectService(db)}
}

// List handles GET /api/projects. ?featured=true restricts to featured ones.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	featuredOnly := c.Query("featured") == "true"
	projects, err := h.service.ListProjects(c.UserContext(), featuredOnly)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newProjectViews(projects))
}

// GetBySlug handles GET /api/projects/:slug.
func (h *ProjectHandler) GetBySlug(c *fiber.Ctx) error {
	project, err := h.service.GetProjectBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newProjectView(*project))
}

// Create handles POST /api/projects (session required).
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	project, err := h.service.CreateProject(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newProjectView(*project))
}

// Update handles PUT /api/projects/:id (session required, partial update).
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusNotFound, "project not found")
	}
	var update services.ProjectUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	project, err := h.service.UpdateProject(c.UserContext(), uint(id), update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newProjectView(*project))
}

// Delete handles DELETE /api/projects/:id (session required).
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusNotFound, "project not found")
	}
	if err := h.service.DeleteProject(c.UserContext(), uint(id)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(Envelope{Success: true})
}
