package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	authController "clubolimpo_backend/internals/features/users/auth/controller"
	authRoute "clubolimpo_backend/internals/features/users/auth/route"
	authService "clubolimpo_backend/internals/features/users/auth/service"
)

func AuthRoutes(api fiber.Router, svc *authService.AuthService, log logrus.FieldLogger, requireAuth fiber.Handler) {
	authRoute.AuthRoutes(api, authController.NewAuthController(svc, log), requireAuth)
}
