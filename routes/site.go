package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	site_handlers "portfolio.site/handlers/site"
)

// registerSiteRoutes defines the public HTML pages.
func registerSiteRoutes(app *fiber.App, db *gorm.DB) {
	siteHandler := site_handlers.NewSiteHandler(db)

	app.Get("/", siteHandler.Home)
	app.Get("/about", siteHandler.About)
	app.Get("/contact", siteHandler.Contact)
	app.Get("/projects", siteHandler.Projects)
	app.Get("/projects/:slug", siteHandler.ProjectDetail)
	app.Get("/blog", siteHandler.Blogs)
	app.Get("/blog/:slug", siteHandler.BlogDetail)
	app.Get("/experience", siteHandler.Experience)
}
