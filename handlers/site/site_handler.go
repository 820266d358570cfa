package site

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/models"
	"portfolio.site/services"
)

// SiteHandler serves the public HTML pages. Every page carries the resolved
// global settings so layout chrome (site name, colors, footer, social links)
// renders without per-page wiring.
type SiteHandler struct {
	pages       services.IPageService
	blogs       services.IBlogService
	projects    services.IProjectService
	experiences services.IExperienceService
	skills      services.ISkillService
	settings    services.ISettingService
}

// NewSiteHandler builds the public site handler.
func NewSiteHandler(db *gorm.DB) *SiteHandler {
	return &SiteHandler{
		pages:       services.NewPageService(db),
		blogs:       services.NewBlogService(db),
		projects:    services.NewProjectService(db),
		experiences: services.NewExperienceService(db),
		skills:      services.NewSkillService(db),
		settings:    services.NewSettingService(db),
	}
}

// render merges the global settings into data and renders the given view
// inside the main layout.
func (h *SiteHandler) render(c *fiber.Ctx, view string, data fiber.Map) error {
	settings := h.settings.GetSettings(c.UserContext())
	data["Settings"] = &settings
	return c.Render(view, data, "layouts/main")
}

// recentBlogLimit caps the blog preview on the home page.
const recentBlogLimit = 3

// Home composes the home page from the page's enabled sections. Each section
// type pulls its own supporting data; the template decides what to draw from
// the section order.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	ctx := c.UserContext()

	sections := models.EmptyPageContent().Renderable()
	seoTitle, seoDesc := "", ""
	if page, err := h.pages.GetPageBySlug(ctx, "home"); err == nil && page.Enabled {
		sections = page.Sections().Renderable()
		seoTitle, seoDesc = page.SeoTitle, page.SeoDesc
	}

	featured, err := h.projects.ListProjects(ctx, true)
	if err != nil {
		featured = nil
	}
	groups, err := h.skills.ListSkillGroups(ctx)
	if err != nil {
		groups = nil
	}
	experiences, err := h.experiences.ListExperiences(ctx, true)
	if err != nil {
		experiences = nil
	}
	blogs, err := h.blogs.ListBlogs(ctx, true)
	if err != nil {
		blogs = nil
	}
	if len(blogs) > recentBlogLimit {
		blogs = blogs[:recentBlogLimit]
	}

	return h.render(c, "site/home", fiber.Map{
		"Title":       seoTitle,
		"Description": seoDesc,
		"Sections":    sections,
		"Featured":    featured,
		"SkillGroups": groups,
		"Experiences": experiences,
		"Blogs":       blogs,
	})
}

// About serves the about page.
func (h *SiteHandler) About(c *fiber.Ctx) error {
	groups, err := h.skills.ListSkillGroups(c.UserContext())
	if err != nil {
		groups = nil
	}
	return h.render(c, "site/about", fiber.Map{
		"Title":       "About",
		"SkillGroups": groups,
	})
}

// Contact serves the contact page; the social links come from settings.
func (h *SiteHandler) Contact(c *fiber.Ctx) error {
	return h.render(c, "site/contact", fiber.Map{"Title": "Contact"})
}

// Projects lists every project, featured first by sort order.
func (h *SiteHandler) Projects(c *fiber.Ctx) error {
	projects, err := h.projects.ListProjects(c.UserContext(), false)
	if err != nil {
		projects = nil
	}
	return h.render(c, "site/projects", fiber.Map{
		"Title":    "Projects",
		"Projects": projects,
	})
}

// ProjectDetail serves one project by slug.
func (h *SiteHandler) ProjectDetail(c *fiber.Ctx) error {
	project, err := h.projects.GetProjectBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}
	return h.render(c, "site/project_detail", fiber.Map{
		"Title":   project.Title,
		"Project": project,
	})
}

// Blogs lists the published posts, newest first.
func (h *SiteHandler) Blogs(c *fiber.Ctx) error {
	blogs, err := h.blogs.ListBlogs(c.UserContext(), true)
	if err != nil {
		blogs = nil
	}
	return h.render(c, "site/blogs", fiber.Map{
		"Title": "Blog",
		"Blogs": blogs,
	})
}

// BlogDetail serves one published post by slug. Drafts are not reachable
// from the public site.
func (h *SiteHandler) BlogDetail(c *fiber.Ctx) error {
	blog, err := h.blogs.GetBlogBySlug(c.UserContext(), c.Params("slug"))
	if err != nil || !blog.Published {
		return fiber.ErrNotFound
	}
	return h.render(c, "site/blog_detail", fiber.Map{
		"Title": blog.Title,
		"Blog":  blog,
	})
}

// Experience lists the visible experience entries.
func (h *SiteHandler) Experience(c *fiber.Ctx) error {
	experiences, err := h.experiences.ListExperiences(c.UserContext(), true)
	if err != nil {
		experiences = nil
	}
	return h.render(c, "site/experience", fiber.Map{
		"Title":       "Experience",
		"Experiences": experiences,
	})
}
