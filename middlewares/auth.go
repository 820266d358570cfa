package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"portfolio.site/services"
)

// UserLocalKey is where the authenticated user is stored on the request.
const UserLocalKey = "currentUser"

// APIAuth gates mutating API routes: a request without a valid session cookie
// gets a 401 envelope and never reaches the handler.
func APIAuth(auth services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(services.SessionCookieName)
		user, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized",
			})
		}
		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}

// AdminAuth gates the admin UI: any request without a valid session is
// redirected to the login page. The login route itself is registered outside
// this middleware.
func AdminAuth(auth services.IAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(services.SessionCookieName)
		user, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			return c.Redirect("/admin/login", fiber.StatusFound)
		}
		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}
