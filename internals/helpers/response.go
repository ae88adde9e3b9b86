package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Khusus error validasi (validator.v10) → 400 with per-field messages
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		msg := "Datos inválidos"
		if err != nil {
			msg = err.Error()
		}
		return JsonError(c, fiber.StatusBadRequest, msg)
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		name := lowerFirst(fe.Field())
		fields[name] = append(fields[name], describeTag(fe))
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success:   false,
		Message:   "Validación fallida",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fields,
	})
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "max":
		return fmt.Sprintf("máximo %s", fe.Param())
	case "min":
		return fmt.Sprintf("mínimo %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor a %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("debe ser menor o igual a %s", fe.Param())
	case "len":
		return fmt.Sprintf("longitud %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "email":
		return "email inválido"
	case "url":
		return "URL inválida"
	case "hexcolor":
		return "color hexadecimal inválido"
	default:
		return fe.Tag()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func errorName(err error) string {
	t := fmt.Sprintf("%T", errors.Unwrap(err))
	if t == "<nil>" {
		t = fmt.Sprintf("%T", err)
	}
	return strings.TrimPrefix(t, "*")
}
