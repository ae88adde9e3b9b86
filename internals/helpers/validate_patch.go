package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FieldErrors collects per-field messages for partial updates, where struct
// tags cannot be used because every field is a PatchField.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) { fe[field] = append(fe[field], msg) }

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

func (fe FieldErrors) Error() string { return "validación fallida" }

// CheckPatch validates a sent value against a validator tag. An explicit null
// on a required field is rejected; absent fields are skipped.
func CheckPatch[T any](v *validator.Validate, errs FieldErrors, field string, p PatchField[T], tag string, required bool) {
	if !p.Present {
		return
	}
	if p.Value == nil {
		if required {
			errs.Add(field, "no puede ser nulo")
		}
		return
	}
	if tag == "" {
		return
	}
	if err := v.Var(*p.Value, tag); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, e := range ve {
				errs.Add(field, describeTag(e))
			}
			return
		}
		errs.Add(field, err.Error())
	}
}

// PatchValidationError writes a 400 in the same shape as ValidationError.
func PatchValidationError(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success:   false,
		Message:   "Validación fallida",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    errs,
	})
}
