package api

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/services"
)

// BlogHandler serves /api/blogs.
type BlogHandler struct {
	service services.IBlogService
}

// NewBlogHandler builds the blog API handler.
func NewBlogHandler(db *gorm.DB) *BlogHandler {
	return &BlogHandler{service: services.NewBlogService(db)}
}

// List handles GET /api/blogs. ?published=true restricts to published posts.
func (h *BlogHandler) List(c *fiber.Ctx) error {
	publishedOnly := c.Query("published") == "true"
	blogs, err := h.service.ListBlogs(c.UserContext(), publishedOnly)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newBlogViews(blogs))
}

// GetBySlug handles GET /api/blogs/:slug.
func (h *BlogHandler) GetBySlug(c *fiber.Ctx) error {
	blog, err := h.service.GetBlogBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newBlogView(*blog))
}

// Create handles POST /api/blogs (session required).
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var input services.BlogInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	blog, err := h.service.CreateBlog(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newBlogView(*blog))
}

// Update handles PUT /api/blogs/:id (session required, partial update).
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusNotFound, "blog not found")
	}
	var update services.BlogUpdate
	if err := c.BodyParser(&update); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	blog, err := h.service.UpdateBlog(c.UserContext(), uint(id), update)
	if err != nil {
		return respondServiceError(c, err)
	}
	return respondOK(c, newBlogView(*blog))
}

// Delete handles DELETE /api/blogs/:id (session required).
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondError(c, fiber.StatusNotFound, "blog not found")
	}
	if err := h.service.DeleteBlog(c.UserContext(), uint(id)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(Envelope{Success: true})
}
