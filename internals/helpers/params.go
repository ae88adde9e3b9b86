package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseID reads a positive integer route parameter.
func ParseID(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Falta el parámetro "+name+".")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "El parámetro "+name+" debe ser un entero positivo.")
	}
	return uint(n), nil
}

// IDOrSlug is the result of splitting a path segment into its two lookup branches.
type IDOrSlug struct {
	ID   uint
	Slug string
}

func (k IDOrSlug) IsID() bool { return k.ID != 0 }

// ParseIDOrSlug: a segment that parses as a positive integer is an ID,
// anything else is a slug.
func ParseIDOrSlug(raw string) IDOrSlug {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil && n > 0 {
		return IDOrSlug{ID: uint(n)}
	}
	return IDOrSlug{Slug: raw}
}
