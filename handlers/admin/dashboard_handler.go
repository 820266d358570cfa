package admin

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio.site/configs/configslog"
	"portfolio.site/services"
)

// DashboardHandler serves the admin landing page with entity counts.
type DashboardHandler struct {
	blogs       services.IBlogService
	projects    services.IProjectService
	experiences services.IExperienceService
	skills      services.ISkillService
}

// NewDashboardHandler builds the dashboard handler.
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		blogs:       services.NewBlogService(db),
		projects:    services.NewProjectService(db),
		experiences: services.NewExperienceService(db),
		skills:      services.NewSkillService(db),
	}
}

// Show renders the dashboard. A failed count renders as zero rather than
// failing the page.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	ctx := c.UserContext()

	count := func(name string, fn func() (int64, error)) int64 {
		n, err := fn()
		if err != nil {
			configslog.Log.Error("dashboard count failed", zap.String("entity", name), zap.Error(err))
			return 0
		}
		return n
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Title":           "Dashboard",
		"BlogCount":       count("blogs", func() (int64, error) { return h.blogs.CountBlogs(ctx) }),
		"ProjectCount":    count("projects", func() (int64, error) { return h.projects.CountProjects(ctx) }),
		"ExperienceCount": count("experience", func() (int64, error) { return h.experiences.CountExperiences(ctx) }),
		"SkillCount":      count("skills", func() (int64, error) { return h.skills.CountSkills(ctx) }),
	}, "layouts/admin")
}
