package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// parseQueryInt reads a non-negative integer query parameter, returning 0
// when absent.
func parseQueryInt(c *fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fiber.ErrBadRequest
	}
	return value, nil
}

// paginate applies offset/limit to a slice; limit 0 means no limit.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
