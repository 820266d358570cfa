package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// formBool reads a checkbox-style form value.
func formBool(c *fiber.Ctx, name string) bool {
	v := c.FormValue(name)
	return v == "true" || v == "on" || v == "1"
}

// formDate parses a yyyy-mm-dd form value; an empty or invalid value returns
// nil.
func formDate(c *fiber.Ctx, name string) *time.Time {
	raw := c.FormValue(name)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &parsed
}
