package admin

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/models"
	"portfolio.site/pkg/jsonfield"
	"portfolio.site/services"
)

// PageHandler serves the page list and the home hero editor.
type PageHandler struct {
	service services.IPageService
}

// NewPageHandler builds the admin page handler.
func NewPageHandler(db *gorm.DB) *PageHandler {
	return &PageHandler{service: services.NewPageService(db)}
}

// List shows all pages.
func (h *PageHandler) List(c *fiber.Ctx) error {
	pages, err := h.service.ListPages(c.UserContext())
	if err != nil {
		pages = nil
	}
	return c.Render("admin/pages/list", fiber.Map{
		"Title": "Pages",
		"Pages": pages,
		"Error": errMessage(err),
	}, "layouts/admin")
}

// ShowHero renders the home page hero editor. Subtitles are shown one per
// line in a textarea.
func (h *PageHandler) ShowHero(c *fiber.Ctx) error {
	page, err := h.service.GetPageBySlug(c.UserContext(), "home")
	if err != nil {
		return c.Render("admin/pages/hero", fiber.Map{
			"Title":     "Home Hero",
			"Hero":      models.HeroData{},
			"Subtitles": "",
			"Error":     errMessage(err),
		}, "layouts/admin")
	}

	var hero models.HeroData
	if section := heroSection(page); section != nil {
		hero = section.Hero()
	}
	return c.Render("admin/pages/hero", fiber.Map{
		"Title":     "Home Hero",
		"Page":      page,
		"Hero":      hero,
		"Subtitles": strings.Join(hero.Subtitles, "\n"),
	}, "layouts/admin")
}

// UpdateHero handles the hero form submit. The hero section is rewritten in
// place; every other section of the page is preserved as-is.
func (h *PageHandler) UpdateHero(c *fiber.Ctx) error {
	page, err := h.service.GetPageBySlug(c.UserContext(), "home")
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("admin/pages/hero", fiber.Map{
			"Title":     "Home Hero",
			"Hero":      models.HeroData{},
			"Subtitles": "",
			"Error":     errMessage(err),
		}, "layouts/admin")
	}

	hero := models.HeroData{
		Title:     c.FormValue("title"),
		Subtitles: jsonfield.SplitLines(c.FormValue("subtitles")),
		CTAText:   c.FormValue("ctaText"),
		CTALink:   c.FormValue("ctaLink"),
	}

	content := page.Sections()
	section := heroSectionOf(&content)
	if section == nil {
		content.Sections = append(content.Sections, models.Section{
			ID:      "hero",
			Type:    models.SectionHero,
			Enabled: true,
		})
		section = &content.Sections[len(content.Sections)-1]
	}
	section.Data = json.RawMessage(jsonfield.Encode(hero))

	update := services.PageUpdate{Content: &content}
	if _, err := h.service.UpdatePage(c.UserContext(), "home", update); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin/pages/hero", fiber.Map{
			"Title":     "Home Hero",
			"Page":      page,
			"Hero":      hero,
			"Subtitles": c.FormValue("subtitles"),
			"Error":     err.Error(),
		}, "layouts/admin")
	}
	return c.Redirect("/admin/pages", fiber.StatusSeeOther)
}

func heroSection(page *models.Page) *models.Section {
	content := page.Sections()
	return heroSectionOf(&content)
}

func heroSectionOf(content *models.PageContent) *models.Section {
	for i := range content.Sections {
		if content.Sections[i].Type == models.SectionHero {
			return &content.Sections[i]
		}
	}
	return nil
}
