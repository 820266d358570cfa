package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	admin_handlers "portfolio.site/handlers/admin"
	"portfolio.site/middlewares"
	"portfolio.site/services"
)

// registerAdminRoutes defines the back-office under /admin. The login pair is
// the only route outside the session redirect.
func registerAdminRoutes(app *fiber.App, db *gorm.DB) {
	authService := services.NewAuthService(db)

	authHandler := admin_handlers.NewAuthHandler(db)
	dashboardHandler := admin_handlers.NewDashboardHandler(db)
	blogHandler := admin_handlers.NewBlogHandler(db)
	projectHandler := admin_handlers.NewProjectHandler(db)
	experienceHandler := admin_handlers.NewExperienceHandler(db)
	skillHandler := admin_handlers.NewSkillHandler(db)
	pageHandler := admin_handlers.NewPageHandler(db)
	settingHandler := admin_handlers.NewSettingHandler(db)

	app.Get("/admin/login", authHandler.ShowLogin)
	app.Post("/admin/login", authHandler.Login)

	adminGroup := app.Group("/admin")
	adminGroup.Use(middlewares.AdminAuth(authService))

	adminGroup.Get("/", dashboardHandler.Show)
	adminGroup.Post("/logout", authHandler.Logout)

	adminGroup.Get("/blogs", blogHandler.List)
	adminGroup.Get("/blogs/create", blogHandler.ShowCreate)
	adminGroup.Post("/blogs/create", blogHandler.Create)
	adminGroup.Get("/blogs/update/:id", blogHandler.ShowUpdate)
	adminGroup.Post("/blogs/update/:id", blogHandler.Update)
	adminGroup.Post("/blogs/delete/:id", blogHandler.Delete)

	adminGroup.Get("/projects", projectHandler.List)
	adminGroup.Get("/projects/create", projectHandler.ShowCreate)
	adminGroup.Post("/projects/create", projectHandler.Create)
	adminGroup.Get("/projects/update/:id", projectHandler.ShowUpdate)
	adminGroup.Post("/projects/update/:id", projectHandler.Update)
	adminGroup.Post("/projects/delete/:id", projectHandler.Delete)

	adminGroup.Get("/experience", experienceHandler.List)
	adminGroup.Get("/experience/create", experienceHandler.ShowCreate)
	adminGroup.Post("/experience/create", experienceHandler.Create)
	adminGroup.Get("/experience/update/:id", experienceHandler.ShowUpdate)
	adminGroup.Post("/experience/update/:id", experienceHandler.Update)
	adminGroup.Post("/experience/delete/:id", experienceHandler.Delete)

	adminGroup.Get("/skills", skillHandler.List)
	adminGroup.Get("/skills/create", skillHandler.ShowCreate)
	adminGroup.Post("/skills/create", skillHandler.Create)
	adminGroup.Get("/skills/update/:id", skillHandler.ShowUpdate)
	adminGroup.Post("/skills/update/:id", skillHandler.Update)
	adminGroup.Post("/skills/delete/:id", skillHandler.Delete)

	adminGroup.Get("/pages", pageHandler.List)
	adminGroup.Get("/pages/hero", pageHandler.ShowHero)
	adminGroup.Post("/pages/hero", pageHandler.UpdateHero)

	adminGroup.Get("/settings", settingHandler.Show)
	adminGroup.Post("/settings", settingHandler.Update)
}
