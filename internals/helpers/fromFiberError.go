package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError turns an error returned from a Transaction (usually *fiber.Error)
// into the standard JSON error. Anything else becomes a 500 carrying the cause.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonServerError(c, "Error interno del servidor.", err)
}

// ErrorHandler is the app-level fiber.ErrorHandler; middleware errors (auth,
// body limit, unknown routes) end up in the same envelope as handler errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
