package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio.site/services"
)

// AuthHandler serves /api/auth.
type AuthHandler struct {
	service services.IAuthService
}

// NewAuthHandler builds the auth API handler.
func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{service: services.NewAuthService(db)}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func sessionCookie(token string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     services.SessionCookieName,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
}

// Login handles POST /api/auth/login: verifies credentials, opens a session
// and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	c.Cookie(sessionCookie(session.Token, session.ExpiresAt))
	return respondOK(c, newUserView(session.User))
}

// Me handles GET /api/auth/me: resolves the session cookie to a user summary
// or 401.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	token := c.Cookies(services.SessionCookieName)
	user, err := h.service.Authenticate(c.UserContext(), token)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "Not authenticated")
	}
	return respondOK(c, newUserView(*user))
}

// Logout handles POST /api/auth/logout: invalidates the session and clears
// the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(services.SessionCookieName)
	if err := h.service.Logout(c.UserContext(), token); err != nil {
		return respondServiceError(c, err)
	}
	c.Cookie(sessionCookie("", time.Now().Add(-time.Hour)))
	return c.JSON(Envelope{Success: true})
}
