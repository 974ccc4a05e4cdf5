package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const DateLayout = "2006-01-02"

// ParseDateQuery reads an optional YYYY-MM-DD query param. Absent → nil.
func ParseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date on "+key+" (expected YYYY-MM-DD)")
	}
	return &t, nil
}
