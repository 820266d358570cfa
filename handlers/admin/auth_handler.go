package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/services"
)

// AuthHandler serves the admin login and logout flow.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler builds the admin auth handler.
func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{service: services.NewAuthService(db)}
}

// ShowLogin renders the login form. An already-authenticated visitor is sent
// straight to the dashboard.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	token := c.Cookies(services.SessionCookieName)
	if _, err := h.service.Authenticate(c.UserContext(), token); err == nil {
		return c.Redirect("/admin", fiber.StatusFound)
	}
	return c.Render("admin/login", fiber.Map{"Title": "Admin Login"})
}

// Login handles the login form post.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	session, err := h.service.Login(c.UserContext(), email, password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).Render("admin/login", fiber.Map{
			"Title": "Admin Login",
			"Error": "Invalid email or password.",
			"Email": email,
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.Redirect("/admin", fiber.StatusFound)
}

// Logout invalidates the session and returns to the login form.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(services.SessionCookieName)
	_ = h.service.Logout(c.UserContext(), token)
	c.Cookie(&fiber.Cookie{
		Name:    services.SessionCookieName,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})
	return c.Redirect("/admin/login", fiber.StatusFound)
}
