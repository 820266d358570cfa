package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	api_handlers "portfolio.site/handlers/api"
	"portfolio.site/middlewares"
	"portfolio.site/services"
)

// registerAPIRoutes defines the JSON API under /api. Reads are public;
// every mutation sits behind the session check.
func registerAPIRoutes(app *fiber.App, db *gorm.DB) {
	authService := services.NewAuthService(db)

	authHandler := api_handlers.NewAuthHandler(db)
	blogHandler := api_handlers.NewBlogHandler(db)
	projectHandler := api_handlers.NewProjectHandler(db)
	experienceHandler := api_handlers.NewExperienceHandler(db)
	skillHandler := api_handlers.NewSkillHandler(db)
	pageHandler := api_handlers.NewPageHandler(db)
	settingHandler := api_handlers.NewSettingHandler(db)

	apiGroup := app.Group("/api")

	// --- Auth ---
	apiGroup.Post("/auth/login", authHandler.Login)
	apiGroup.Get("/auth/me", authHandler.Me)
	apiGroup.Post("/auth/logout", authHandler.Logout)

	// --- Public reads ---
	apiGroup.Get("/blogs", blogHandler.List)
	apiGroup.Get("/blogs/:slug", blogHandler.GetBySlug)
	apiGroup.Get("/projects", projectHandler.List)
	apiGroup.Get("/projects/:slug", projectHandler.GetBySlug)
	apiGroup.Get("/experience", experienceHandler.List)
	apiGroup.Get("/skills", skillHandler.List)
	apiGroup.Get("/pages/:slug", pageHandler.GetBySlug)
	apiGroup.Get("/settings", settingHandler.Get)

	// --- Session-gated mutations ---
	protected := apiGroup.Group("", middlewares.APIAuth(authService))

	protected.Post("/blogs", blogHandler.Create)
	protected.Put("/blogs/:id", blogHandler.Update)
	protected.Delete("/blogs/:id", blogHandler.Delete)

	protected.Post("/projects", projectHandler.Create)
	protected.Put("/projects/:id", projectHandler.Update)
	protected.Delete("/projects/:id", projectHandler.Delete)

	protected.Post("/experience", experienceHandler.Create)
	protected.Put("/experience/:id", experienceHandler.Update)
	protected.Delete("/experience/:id", experienceHandler.Delete)

	protected.Post("/skills", skillHandler.Create)
	protected.Put("/skills/:id", skillHandler.Update)
	protected.Delete("/skills/:id", skillHandler.Delete)

	protected.Put("/pages/:slug", pageHandler.Update)
	protected.Put("/settings", settingHandler.Update)
}
