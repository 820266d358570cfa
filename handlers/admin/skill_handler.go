package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/services"
)

// SkillHandler serves the skill CRUD forms.
type SkillHandler struct {
	service services.ISkillService
}

// NewSkillHandler builds the admin skill handler.
func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{service: services.NewSkillService(db)}
}

// List shows skills grouped by category.
func (h *SkillHandler) List(c *fiber.Ctx) error {
	groups, err := h.service.ListSkillGroups(c.UserContext())
	if err != nil {
		groups = nil
	}
	return c.Render("admin/skills/list", fiber.Map{
		"Title":  "Skills",
		"Groups": groups,
		"Error":  errMessage(err),
	}, "layouts/admin")
}

// ShowCreate renders the empty skill form.
func (h *SkillHandler) ShowCreate(c *fiber.Ctx) error {
	return c.Render("admin/skills/form", fiber.Map{"Title": "New Skill"}, "layouts/admin")
}

func skillInputFromForm(c *fiber.Ctx) services.SkillInput {
	order, _ := strconv.Atoi(c.FormValue("order", "0"))
	return services.SkillInput{
		Name:     c.FormValue("name"),
		Category: c.FormValue("category"),
		Icon:     c.FormValue("icon"),
		Order:    order,
	}
}

// Create handles the skill form submit.
func (h *SkillHandler) Create(c *fiber.Ctx) error {
	input := skillInputFromForm(c)
	if _, err := h.service.CreateSkill(c.UserContext(), input); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin/skills/form", fiber.Map{
			"Title": "New Skill",
			"Error": err.Error(),
			"Form":  &input,
		}, "layouts/admin")
	}
	return c.Redirect("/admin/skills", fiber.StatusSeeOther)
}

// ShowUpdate renders the edit form for one skill.
func (h *SkillHandler) ShowUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/admin/skills", fiber.StatusSeeOther)
	}
	skill, err := h.service.GetSkillByID(c.UserContext(), uint(id))
	if err != nil {
		return c.Redirect("/admin/skills", fiber.StatusSeeOther)
	}
	return c.Render("admin/skills/form", fiber.Map{
		"Title": "Edit Skill",
		"Skill": skill,
	}, "layouts/admin")
}

// Update handles the edit form submit.
func (h *SkillHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/admin/skills", fiber.StatusSeeOther)
	}

	input := skillInputFromForm(c)
	update := services.SkillUpdate{
		Name:     &input.Name,
		Category: &input.Category,
		Icon:     &input.Icon,
		Order:    &input.Order,
	}
	if _, err := h.service.UpdateSkill(c.UserContext(), uint(id), update); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin/skills/form", fiber.Map{
			"Title": "Edit Skill",
			"Error": err.Error(),
			"Form":  &input,
		}, "layouts/admin")
	}
	return c.Redirect("/admin/skills", fiber.StatusSeeOther)
}

// Delete removes a skill.
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err == nil && id > 0 {
		_ = h.service.DeleteSkill(c.UserContext(), uint(id))
	}
	return c.Redirect("/admin/skills", fiber.StatusSeeOther)
}
