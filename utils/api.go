package utils

import (
	"fmt"
	"strconv"

	fiber "github.com/gofiber/fiber/v2"
)

// ParseIDParam reads a positive integer route parameter
func ParseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}
