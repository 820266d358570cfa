package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolio.site/configs/configslog"
	"portfolio.site/services"
)

// Envelope is the uniform response wrapper shared by every API endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *fiber.Ctx, data any) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: message})
}

// respondServiceError maps service errors onto the envelope status policy:
// not-found errors become 404, validation errors 400, everything else a
// generic 500 with the detail kept server-side.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case isNotFound(err):
		return respondError(c, fiber.StatusNotFound, err.Error())
	case isValidation(err):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	default:
		configslog.Log.Error("api: unexpected failure",
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.Error(err),
		)
		return respondError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, services.ErrBlogNotFound) ||
		errors.Is(err, services.ErrProjectNotFound) ||
		errors.Is(err, services.ErrExperienceNotFound) ||
		errors.Is(err, services.ErrSkillNotFound) ||
		errors.Is(err, services.ErrPageNotFound)
}

func isValidation(err error) bool {
	var blogErr services.BlogServiceError
	var projectErr services.ProjectServiceError
	var expErr services.ExperienceServiceError
	var skillErr services.SkillServiceError
	var pageErr services.PageServiceError
	return (errors.As(err, &blogErr) ||
		errors.As(err, &projectErr) ||
		errors.As(err, &expErr) ||
		errors.As(err, &skillErr) ||
		errors.As(err, &pageErr)) && !isNotFound(err)
}
