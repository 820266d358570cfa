package admin

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/models"
	"portfolio.site/pkg/jsonfield"
	"portfolio.site/services"
)

// ExperienceHandler serves the experience CRUD forms.
type ExperienceHandler struct {
	service services.IExperienceService
}

// NewExperienceHandler builds the admin experience handler.
func NewExperienceHandler(db *gorm.DB) *ExperienceHandler {
	return &ExperienceHandler{service: services.NewExperienceService(db)}
}

// List shows all entries, hidden ones included.
func (h *ExperienceHandler) List(c *fiber.Ctx) error {
	experiences, err := h.service.ListExperiences(c.UserContext(), false)
	if err != nil {
		experiences = nil
	}
	return c.Render("admin/experience/list", fiber.Map{
		"Title":       "Experience",
		"Experiences": experiences,
		"Error":       errMessage(err),
	}, "layouts/admin")
}

// ShowCreate renders the empty entry form.
func (h *ExperienceHandler) ShowCreate(c *fiber.Ctx) error {
	return c.Render("admin/experience/form", fiber.Map{"Title": "New Experience"}, "layouts/admin")
}

func experienceInputFromForm(c *fiber.Ctx) services.ExperienceInput {
	order, _ := strconv.Atoi(c.FormValue("order", "0"))
	visible := formBool(c, "visible")

	var start time.Time
	if parsed := formDate(c, "start_date"); parsed != nil {
		start = *parsed
	}

	return services.ExperienceInput{
		Role:         c.FormValue("role"),
		Organization: c.FormValue("organization"),
		Location:     c.FormValue("location"),
		StartDate:    start,
		EndDate:      formDate(c, "end_date"),
		// One bullet per line in the form.
		Description: jsonfield.SplitLines(c.FormValue("description")),
		Type:        models.ExperienceType(c.FormValue("type")),
		Order:       order,
		Visible:     &visible,
	}
}

// Create handles the entry form submit.
func (h *ExperienceHandler) Create(c *fiber.Ctx) error {
	input := experienceInputFromForm(c)
	if _, err := h.service.CreateExperience(c.UserContext(), input); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin/experience/form", fiber.Map{
			"Title": "New Experience",
			"Error": err.Error(),
			"Form":  &input,
		}, "layouts/admin")
	}
	return c.Redirect("/admin/experience", fiber.StatusSeeOther)
}

// ShowUpdate renders the edit form for one entry.
func (h *ExperienceHandler) ShowUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/admin/experience", fiber.StatusSeeOther)
	}
	experience, err := h.service.GetExperienceByID(c.UserContext(), uint(id))
	if err != nil {
		return c.Redirect("/admin/experience", fiber.StatusSeeOther)
	}
	return c.Render("admin/experience/form", fiber.Map{
		"Title":      "Edit Experience",
		"Experience": experience,
	}, "layouts/admin")
}

// Update handles the edit form submit. An empty end date in the form means
// the position is ongoing.
func (h *ExperienceHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/admin/experience", fiber.StatusSeeOther)
	}

	input := experienceInputFromForm(c)
	update := services.ExperienceUpdate{
		Role:         &input.Role,
		Organization: &input.Organization,
		Location:     &input.Location,
		StartDate:    &input.StartDate,
		EndDate:      input.EndDate,
		ClearEndDate: input.EndDate == nil,
		Description:  &input.Description,
		Type:         &input.Type,
		Order:        &input.Order,
		Visible:      input.Visible,
	}
	if _, err := h.service.UpdateExperience(c.UserContext(), uint(id), update); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin/experience/form", fiber.Map{
			"Title": "Edit Experience",
			"Error": err.Error(),
			"Form":  &input,
		}, "layouts/admin")
	}
	return c.Redirect("/admin/experience", fiber.StatusSeeOther)
}

// Delete removes an entry.
func (h *ExperienceHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err == nil && id > 0 {
		_ = h.service.DeleteExperience(c.UserContext(), uint(id))
	}
	return c.Redirect("/admin/experience", fiber.StatusSeeOther)
}
