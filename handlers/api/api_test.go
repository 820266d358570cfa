package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	api_handlers "portfolio.site/handlers/api"
	"portfolio.site/middlewares"
	"portfolio.site/models"
	"portfolio.site/services"
)

// newTestApp wires the API routes over a fresh in-memory database, mirroring
// the production route table.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Page{},
		&models.Blog{},
		&models.Project{},
		&models.Experience{},
		&models.Skill{},
		&models.Setting{},
	))

	app := fiber.New()

	authService := services.NewAuthService(db)
	authHandler := api_handlers.NewAuthHandler(db)
	blogHandler := api_handlers.NewBlogHandler(db)
	settingHandler := api_handlers.NewSettingHandler(db)

	apiGroup := app.Group("/api")
	apiGroup.Post("/auth/login", authHandler.Login)
	apiGroup.Get("/auth/me", authHandler.Me)
	apiGroup.Post("/auth/logout", authHandler.Logout)
	apiGroup.Get("/blogs", blogHandler.List)
	apiGroup.Get("/blogs/:slug", blogHandler.GetBySlug)
	apiGroup.Get("/settings", settingHandler.Get)

	protected := apiGroup.Group("", middlewares.APIAuth(authService))
	protected.Post("/blogs", blogHandler.Create)
	protected.Delete("/blogs/:id", blogHandler.Delete)
	protected.Put("/settings", settingHandler.Update)

	return app, db
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string, cookie *http.Cookie) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp, env
}

func seedAdmin(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	hash, err := services.HashPassword("secret123")
	require.NoError(t, err)
	user := models.User{Email: "admin@example.com", Name: "Admin", PasswordHash: hash}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func sessionCookieFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == services.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestBlogListPublishedFilter(t *testing.T) {
	app, db := newTestApp(t)
	svc := services.NewBlogService(db)

	_, err := svc.CreateBlog(context.Background(), services.BlogInput{
		Title: "Draft", Slug: "draft", Content: "...",
	})
	require.NoError(t, err)
	_, err = svc.CreateBlog(context.Background(), services.BlogInput{
		Title: "Live", Slug: "live", Content: "...", Published: true,
	})
	require.NoError(t, err)

	_, env := doRequest(t, app, http.MethodGet, "/api/blogs", "", nil)
	require.True(t, env.Success)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Len(t, all, 2)

	_, env = doRequest(t, app, http.MethodGet, "/api/blogs?published=true", "", nil)
	require.True(t, env.Success)
	var published []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &published))
	require.Len(t, published, 1)
	assert.Equal(t, "live", published[0]["slug"])
	assert.NotEmpty(t, published[0]["publishedAt"])
}

func TestBlogGetBySlugNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doRequest(t, app, http.MethodGet, "/api/blogs/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestSettingsDefaultsOnEmptyStore(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doRequest(t, app, http.MethodGet, "/api/settings", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	var settings models.GlobalSettings
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "Portfolio", settings.SiteName)
	assert.Equal(t, "#3b82f6", settings.PrimaryColor)
	assert.Equal(t, "#8b5cf6", settings.AccentColor)
	assert.Equal(t, "#ffffff", settings.BackgroundColor)
	assert.Equal(t, "© 2024 Portfolio. All rights reserved.", settings.FooterText)
	assert.Equal(t, models.SocialLinks{}, settings.SocialLinks)
}

func TestMutationRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doRequest(t, app, http.MethodPost, "/api/blogs",
		`{"title":"X","slug":"x","content":"..."}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)

	resp, env = doRequest(t, app, http.MethodPut, "/api/settings",
		`{"siteName":"Hacked"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestLoginSessionFlow(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)

	resp, env := doRequest(t, app, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)

	resp, env = doRequest(t, app, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)
	cookie := sessionCookieFrom(t, resp)

	resp, env = doRequest(t, app, http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "admin@example.com", me["email"])

	resp, env = doRequest(t, app, http.MethodPost, "/api/blogs",
		`{"title":"Hello","slug":"hello","content":"..."}`, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/auth/logout", "", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/auth/me", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticatedSettingsUpdateIsPartial(t *testing.T) {
	app, db := newTestApp(t)
	seedAdmin(t, db)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"secret123"}`, nil)
	cookie := sessionCookieFrom(t, resp)

	resp, env := doRequest(t, app, http.MethodPut, "/api/settings",
		`{"siteName":"My Site"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, env.Success)

	_, env = doRequest(t, app, http.MethodGet, "/api/settings", "", nil)
	var settings models.GlobalSettings
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "My Site", settings.SiteName)
	assert.Equal(t, "#3b82f6", settings.PrimaryColor)
}
