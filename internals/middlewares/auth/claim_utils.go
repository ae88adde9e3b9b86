// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	authService "clubolimpo_backend/internals/features/users/auth/service"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errors.New("Acceso denegado: no se proporcionó token.")
	}

	// toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("Acceso denegado: formato de token inválido.")
	}

	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errors.New("Acceso denegado: token vacío.")
	}
	return tok, nil
}

/* ======== Store claims to Locals ======== */

func storeClaimsToLocals(c *fiber.Ctx, claims *authService.Claims) {
	c.Locals(LocUserID, claims.ID)
	c.Locals(LocUsername, claims.Username)
}

// UserID returns the authenticated user id, or 0 outside an authenticated route.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocUserID).(uint)
	return id
}
