package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// SetupRoutes installs the global middleware and every route group.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	registerAPIRoutes(app, db)
	registerAdminRoutes(app, db)
	registerSiteRoutes(app, db)

	app.Use(notFoundHandler)
}

// notFoundHandler catches everything no route matched. API paths get the JSON
// envelope, everything else the HTML error page.
func notFoundHandler(c *fiber.Ctx) error {
	if len(c.Path()) >= 5 && c.Path()[:5] == "/api/" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Not found",
		})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title": "Page Not Found",
	}, "layouts/main")
}
