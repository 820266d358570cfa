package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/pkg/jsonfield"
	"portfolio.site/services"
)

// ProjectHandler serves the project CRUD forms.
type ProjectHandler struct {
	service services.IProjectService
}

// NewProjectHandler builds the admin project handler.
func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{service: services.NewProjectService(db)}
}

// List shows all projects.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	projects, err := h.service.ListProjects(c.UserContext(), false)
	if err != nil {
		projects = nil
	}
	return c.Render("admin/projects/list", fiber.Map{
		"Title":    "Projects",
		"Projects": projects,
		"Error":    errMessage(err),
	}, "layouts/admin")
}

// ShowCreate renders the empty project form.
func (h *ProjectHandler) ShowCreate(c *fiber.Ctx) error {
	return c.Render("admin/projects/form", fiber.Map{"Title": "New Project"}, "layouts/admin")
}

func projectInputFromForm(c *fiber.Ctx) services.ProjectInput {
	order, _ := strconv.Atoi(c.FormValue("order", "0"))
	return services.ProjectInput{
		Title:    c.FormValue("title"),
		Slug:     c.FormValue("slug"),
		Overview: c.FormValue("overview"),
		Problem:  c.FormValue("problem"),
		Process:  c.FormValue("process"),
		Solution: c.FormValue("solution"),
		Result:   c.FormValue("result"),
		// Comma-separated in the form, one URL per line for the gallery.
		TechStack:    jsonfield.SplitCSV(c.FormValue("tech_stack")),
		ImageGallery: jsonfield.SplitLines(c.FormValue("image_gallery")),
		Featured:     formBool(c, "featured"),
		Order:        order,
		SeoTitle:     c.FormValue("seo_title"),
		SeoDesc:      c.FormValue("seo_desc"),
	}
}

// Create handles the project form submit.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	input := projectInputFromForm(c)
	if _, err := h.service.CreateProject(c.UserContext(), input); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin/projects/form", fiber.Map{
			"Title": "New Project",
			"Error": err.Error(),
			"Form":  &input,
		}, "layouts/admin")
	}
	return c.Redirect("/admin/projects", fiber.StatusSeeOther)
}

// ShowUpdate renders the edit form for one project.
func (h *ProjectHandler) ShowUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/admin/projects", fiber.StatusSeeOther)
	}
	project, err := h.service.GetProjectByID(c.UserContext(), uint(id))
	if err != nil {
		return c.Redirect("/admin/projects", fiber.StatusSeeOther)
	}
	return c.Render("admin/projects/form", fiber.Map{
		"Title":   "Edit Project",
		"Project": project,
	}, "layouts/admin")
}

// Update handles the edit form submit.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/admin/projects", fiber.StatusSeeOther)
	}

	input := projectInputFromForm(c)
	update := services.ProjectUpdate{
		Title:        &input.Title,
		Slug:         &input.Slug,
		Overview:     &input.Overview,
		Problem:      &input.Problem,
		Process:      &input.Process,
		Solution:     &input.Solution,
		Result:       &input.Result,
		TechStack:    &input.TechStack,
		ImageGallery: &input.ImageGallery,
		Featured:     &input.Featured,
		Order:        &input.Order,
		SeoTitle:     &input.SeoTitle,
		SeoDesc:      &input.SeoDesc,
	}
	if _, err := h.service.UpdateProject(c.UserContext(), uint(id), update); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin/projects/form", fiber.Map{
			"Title": "Edit Project",
			"Error": err.Error(),
			"Form":  &input,
		}, "layouts/admin")
	}
	return c.Redirect("/admin/projects", fiber.StatusSeeOther)
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err == nil && id > 0 {
		_ = h.service.DeleteProject(c.UserContext(), uint(id))
	}
	return c.Redirect("/admin/projects", fiber.StatusSeeOther)
}
