package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
)

// DBErrorKind classifies persistence failures for HTTP mapping.
type DBErrorKind int

const (
	DBErrUnknown DBErrorKind = iota
	DBErrNotFound
	DBErrDuplicate
	DBErrForeignKey
	DBErrCheck
)

// ClassifyDBError returns the kind and a constraint detail string.
func ClassifyDBError(err error) (DBErrorKind, string) {
	if err == nil {
		return DBErrUnknown, ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, crud.ErrNotFound) {
		return DBErrNotFound, ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		detail := pgErr.Detail
		if detail == "" {
			detail = pgErr.ConstraintName
		}
		switch pgErr.Code {
		case "23505":
			return DBErrDuplicate, detail
		case "23503":
			return DBErrForeignKey, detail
		case "23514", "23502":
			return DBErrCheck, detail
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		detail := pqErr.Detail
		if detail == "" {
			detail = pqErr.Constraint
		}
		switch pqErr.Code {
		case "23505":
			return DBErrDuplicate, detail
		case "23503":
			return DBErrForeignKey, detail
		case "23514", "23502":
			return DBErrCheck, detail
		}
	}

	// sqlite dialector (TranslateError=true) in tests
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return DBErrDuplicate, err.Error()
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return DBErrForeignKey, err.Error()
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return DBErrCheck, err.Error()
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint"):
		return DBErrDuplicate, err.Error()
	case strings.Contains(msg, "foreign key"):
		return DBErrForeignKey, err.Error()
	}
	return DBErrUnknown, err.Error()
}

// RespondDBError writes the JSON error matching err; conflictMsg is used for 409.
func RespondDBError(c *fiber.Ctx, err error, conflictMsg, serverMsg string) error {
	kind, detail := ClassifyDBError(err)
	switch kind {
	case DBErrNotFound:
		return JsonError(c, fiber.StatusNotFound, "Registro no encontrado.")
	case DBErrDuplicate:
		return JsonConflict(c, conflictMsg, detail)
	case DBErrForeignKey:
		return JsonError(c, fiber.StatusBadRequest, "Referencia inválida: "+detail)
	case DBErrCheck:
		return JsonError(c, fiber.StatusBadRequest, "Restricción de datos violada: "+detail)
	default:
		return JsonServerError(c, serverMsg, err)
	}
}

// RespondDeactivate maps the outcome of a soft-delete: 404 when the row is
// absent, 400 with inactiveMsg when it was already inactive.
func RespondDeactivate(c *fiber.Ctx, err error, notFoundMsg, inactiveMsg string) error {
	switch {
	case errors.Is(err, crud.ErrNotFound):
		return JsonError(c, fiber.StatusNotFound, notFoundMsg)
	case errors.Is(err, crud.ErrAlreadyInactive):
		return JsonError(c, fiber.StatusBadRequest, inactiveMsg)
	default:
		return JsonServerError(c, "Error interno del servidor al desactivar el registro.", err)
	}
}
