package api

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/services"
)

// SettingHandler serves /api/settings.
type SettingHandler struct {
	service services.ISettingService
}

// NewSettingHandler builds the settings API handler.
func NewSettingHandler(db *gorm.DB) *SettingHandler {
	return &SettingHandler{service: services.NewSettingService(db)}
}

// Get handles GET /api/settings. The resolver never fails; an unreachable
// store degrades to the default object.
func (h *SettingHandler) Get(c *fiber.Ctx) error {
	return respondOK(c, h.service.GetSettings(c.UserContext()))
}

// Update handles PUT /api/settings (session required, partial merge-update).
// The response carries the freshly resolved object.
func (h *SettingHandler) Update(c *fiber.Ctx) error {
	var update services.SettingsUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.service.UpdateSettings(c.UserContext(), update); err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, h.service.GetSettings(c.UserContext()))
}
