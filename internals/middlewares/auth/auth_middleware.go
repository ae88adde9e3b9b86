// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	authService "clubolimpo_backend/internals/features/users/auth/service"
)

// Locals keys set for downstream handlers.
const (
	LocUserID   = "user_id"
	LocUsername = "username"
)

// TokenParser verifies a raw bearer token.
type TokenParser interface {
	ParseToken(raw string) (*authService.Claims, error)
}

// AuthMiddleware requires a valid bearer token and stores the identity in Locals.
func AuthMiddleware(tokens TokenParser, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization header
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Parse & verifikasi JWT (signature + exp)
		claims, err := tokens.ParseToken(tokenString)
		switch {
		case errors.Is(err, authService.ErrTokenExpired):
			return fiber.NewError(fiber.StatusUnauthorized, "Acceso denegado: token expirado.")
		case errors.Is(err, authService.ErrMissingSecret):
			log.Error("JWT_SECRET is empty, rejecting authenticated request")
			return fiber.NewError(fiber.StatusInternalServerError, "Configuración de autenticación incompleta.")
		case err != nil:
			log.WithField("path", c.Path()).Debug("invalid token")
			return fiber.NewError(fiber.StatusUnauthorized, "Acceso denegado: token inválido.")
		}

		// 3) Simpan identitas ke context
		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}
