package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio.site/middlewares"
	"portfolio.site/models"
	"portfolio.site/services"
)

func newGateApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}, &models.Blog{}))

	auth := services.NewAuthService(db)
	app := fiber.New()

	app.Get("/api/blogs", func(c *fiber.Ctx) error {
		blogService := services.NewBlogService(db)
		blogs, err := blogService.ListBlogs(c.UserContext(), c.Query("published") == "true")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false})
		}
		return c.JSON(fiber.Map{"success": true, "data": blogs})
	})
	app.Post("/api/blogs", middlewares.APIAuth(auth), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	app.Get("/admin", middlewares.AdminAuth(auth), func(c *fiber.Ctx) error {
		return c.SendString("dashboard")
	})

	return app, db
}

func seedSession(t *testing.T, db *gorm.DB) *models.Session {
	t.Helper()
	hash, err := services.HashPassword("secret123")
	require.NoError(t, err)
	user := models.User{Email: "admin@example.com", PasswordHash: hash}
	require.NoError(t, db.Create(&user).Error)

	session, err := services.NewAuthService(db).Login(context.Background(), user.Email, "secret123")
	require.NoError(t, err)
	return session
}

func withSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: services.SessionCookieName, Value: token})
	return req
}

// Public reads must not pass through the session gate, and reading rows with
// time columns back from the test database must not fail.
func TestPublicReadBypassesGate(t *testing.T) {
	app, db := newGateApp(t)

	now := time.Now().UTC()
	blog := models.Blog{Title: "Live", Slug: "live", Content: "...", Published: true, PublishedAt: &now}
	require.NoError(t, db.Create(&blog).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/blogs?published=true", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMutationWithoutSessionRejected(t *testing.T) {
	app, _ := newGateApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/blogs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminWithoutSessionRedirectsToLogin(t *testing.T) {
	app, _ := newGateApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestValidSessionPassesBothGates(t *testing.T) {
	app, db := newGateApp(t)
	session := seedSession(t, db)

	resp, err := app.Test(withSession(httptest.NewRequest(http.MethodPost, "/api/blogs", nil), session.Token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(withSession(httptest.NewRequest(http.MethodGet, "/admin", nil), session.Token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
