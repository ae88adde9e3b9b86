// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "clubolimpo_backend/internals/features/users/auth/controller"
	rateLimiter "clubolimpo_backend/internals/middlewares"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(api fiber.Router, ctl *controller.AuthController, requireAuth fiber.Handler) {
	baseAuth := api.Group("/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), ctl.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), ctl.Register)
	baseAuth.Get("/me", requireAuth, ctl.Me)
}
