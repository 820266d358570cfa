package admin

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/pkg/jsonfield"
	"portfolio.site/services"
)

// BlogHandler serves the blog CRUD forms.
type BlogHandler struct {
	service services.IBlogService
}

// NewBlogHandler builds the admin blog handler.
func NewBlogHandler(db *gorm.DB) *BlogHandler {
	return &BlogHandler{service: services.NewBlogService(db)}
}

// List shows all posts, drafts included.
func (h *BlogHandler) List(c *fiber.Ctx) error {
	blogs, err := h.service.ListBlogs(c.UserContext(), false)
	if err != nil {
		blogs = nil
	}
	return c.Render("admin/blogs/list", fiber.Map{
		"Title": "Blogs",
		"Blogs": blogs,
		"Error": errMessage(err),
	}, "layouts/admin")
}

// ShowCreate renders the empty post form.
func (h *BlogHandler) ShowCreate(c *fiber.Ctx) error {
	return c.Render("admin/blogs/form", fiber.Map{"Title": "New Blog"}, "layouts/admin")
}

func blogInputFromForm(c *fiber.Ctx) services.BlogInput {
	return services.BlogInput{
		Title:         c.FormValue("title"),
		Slug:          c.FormValue("slug"),
		Content:       c.FormValue("content"),
		Excerpt:       c.FormValue("excerpt"),
		FeaturedImage: c.FormValue("featured_image"),
		Tags:          jsonfield.SplitCSV(c.FormValue("tags")),
		Published:     formBool(c, "published"),
		SeoTitle:      c.FormValue("seo_title"),
		SeoDesc:       c.FormValue("seo_desc"),
	}
}

// Create handles the post form submit.
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	input := blogInputFromForm(c)
	if _, err := h.service.CreateBlog(c.UserContext(), input); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin/blogs/form", fiber.Map{
			"Title": "New Blog",
			"Error": err.Error(),
			"Form":  &input,
		}, "layouts/admin")
	}
	return c.Redirect("/admin/blogs", fiber.StatusSeeOther)
}

// ShowUpdate renders the edit form for one post.
func (h *BlogHandler) ShowUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/admin/blogs", fiber.StatusSeeOther)
	}
	blog, err := h.service.GetBlogByID(c.UserContext(), uint(id))
	if err != nil {
		return c.Redirect("/admin/blogs", fiber.StatusSeeOther)
	}
	return c.Render("admin/blogs/form", fiber.Map{
		"Title": "Edit Blog",
		"Blog":  blog,
		"Tags":  jsonfield.Encode(blog.TagList()),
	}, "layouts/admin")
}

// Update handles the edit form submit. Form fields always post a complete
// record, so every field is sent through the partial update.
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Redirect("/admin/blogs", fiber.StatusSeeOther)
	}

	input := blogInputFromForm(c)
	update := services.BlogUpdate{
		Title:         &input.Title,
		Slug:          &input.Slug,
		Content:       &input.Content,
		Excerpt:       &input.Excerpt,
		FeaturedImage: &input.FeaturedImage,
		Tags:          &input.Tags,
		Published:     &input.Published,
		SeoTitle:      &input.SeoTitle,
		SeoDesc:       &input.SeoDesc,
	}
	if _, err := h.service.UpdateBlog(c.UserContext(), uint(id), update); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("admin/blogs/form", fiber.Map{
			"Title": "Edit Blog",
			"Error": err.Error(),
			"Form":  &input,
		}, "layouts/admin")
	}
	return c.Redirect("/admin/blogs", fiber.StatusSeeOther)
}

// Delete removes a post.
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err == nil && id > 0 {
		_ = h.service.DeleteBlog(c.UserContext(), uint(id))
	}
	return c.Redirect("/admin/blogs", fiber.StatusSeeOther)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return "Could not load records."
}
