// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	ErrorCode   string              `json:"error_code,omitempty"`
	Errors      map[string][]string `json:"errors,omitempty"`
	ErrorName   string              `json:"error_name,omitempty"`
	ErrorDetail string              `json:"error_detail,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "TOO_MANY_REQUESTS"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (not validation)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
		if status < 500 {
			message = statusToErrorCode(status)
		}
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonServerError: 500 with the underlying cause attached for diagnosis.
func JsonServerError(c *fiber.Ctx, message string, err error) error {
	resp := ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(fiber.StatusInternalServerError),
	}
	if err != nil {
		resp.ErrorName = errorName(err)
		resp.ErrorDetail = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}

// JsonConflict: 409 carrying the violated constraint detail.
func JsonConflict(c *fiber.Ctx, message, detail string) error {
	return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
		Success:     false,
		Message:     message,
		ErrorCode:   statusToErrorCode(fiber.StatusConflict),
		ErrorDetail: detail,
	})
}

/* ===============================
   JSON responses (standard success)
=================================*/

// SuccessResponse is the envelope of every 2xx body.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func jsonSuccess(c *fiber.Ctx, status int, message, fallback string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = fallback
	}
	return c.Status(status).JSON(SuccessResponse{Success: true, Message: message, Data: data})
}

// JsonOK: GET list/detail
func JsonOK(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, "ok", data)
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusCreated, message, "created", data)
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, "updated", data)
}

// JsonDeleted: soft-delete (PUT .../delete/:id)
func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, "deleted", data)
}
