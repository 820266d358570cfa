package api

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/services"
)

// PageHandler serves /api/pages. Pages are read and updated by slug; there is
// no create or delete on this surface.
type PageHandler struct {
	service services.IPageService
}

// NewPageHandler builds the page API handler.
func NewPageHandler(db *gorm.DB) *PageHandler {
	return &PageHandler{service: services.NewPageService(db)}
}

// GetBySlug handles GET /api/pages/:slug, returning the page with its
// sections decoded.
func (h *PageHandler) GetBySlug(c *fiber.Ctx) error {
	page, err := h.service.GetPageBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newPageView(*page))
}

// Update handles PUT /api/pages/:slug (session required, partial update).
func (h *PageHandler) Update(c *fiber.Ctx) error {
	var update services.PageUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	page, err := h.service.UpdatePage(c.UserContext(), c.Params("slug"), update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newPageView(*page))
}
