package admin

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/models"
	"portfolio.site/services"
)

// SettingHandler serves the site settings form.
type SettingHandler struct {
	service services.ISettingService
}

// NewSettingHandler builds the admin setting handler.
func NewSettingHandler(db *gorm.DB) *SettingHandler {
	return &SettingHandler{service: services.NewSettingService(db)}
}

// Show renders the settings form with the current resolved values.
func (h *SettingHandler) Show(c *fiber.Ctx) error {
	settings := h.service.GetSettings(c.UserContext())
	return c.Render("admin/settings/form", fiber.Map{
		"Title":    "Settings",
		"Settings": settings,
	}, "layouts/admin")
}

// Update handles the settings form submit. Every field is present on the form,
// so every key is written back.
func (h *SettingHandler) Update(c *fiber.Ctx) error {
	siteName := c.FormValue("siteName")
	logo := c.FormValue("logo")
	favicon := c.FormValue("favicon")
	primaryColor := c.FormValue("primaryColor")
	accentColor := c.FormValue("accentColor")
	backgroundColor := c.FormValue("backgroundColor")
	footerText := c.FormValue("footerText")
	seoTitle := c.FormValue("defaultSeoTitle")
	seoDesc := c.FormValue("defaultSeoDesc")
	social := models.SocialLinks{
		GitHub:   c.FormValue("github"),
		LinkedIn: c.FormValue("linkedin"),
		Twitter:  c.FormValue("twitter"),
		Email:    c.FormValue("email"),
	}

	update := services.SettingsUpdate{
		SiteName:        &siteName,
		Logo:            &logo,
		Favicon:         &favicon,
		PrimaryColor:    &primaryColor,
		AccentColor:     &accentColor,
		BackgroundColor: &backgroundColor,
		FooterText:      &footerText,
		SocialLinks:     &social,
		DefaultSeoTitle: &seoTitle,
		DefaultSeoDesc:  &seoDesc,
	}
	if err := h.service.UpdateSettings(c.UserContext(), update); err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("admin/settings/form", fiber.Map{
			"Title":    "Settings",
			"Settings": h.service.GetSettings(c.UserContext()),
			"Error":    err.Error(),
		}, "layouts/admin")
	}
	return c.Redirect("/admin/settings", fiber.StatusSeeOther)
}
