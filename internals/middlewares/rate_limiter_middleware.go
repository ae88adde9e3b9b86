package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "clubolimpo_backend/internals/helpers"
)

// perIP limits requests by client IP and answers 429 with msg.
func perIP(max int, window time.Duration, msg string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, msg)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return perIP(100, time.Minute, "❌ Demasiadas solicitudes. Inténtalo de nuevo más tarde.")
}

// Login lebih ketat
func LoginRateLimiter() fiber.Handler {
	return perIP(5, time.Minute, "❌ Demasiados intentos de inicio de sesión. Espera un momento.")
}

func RegisterRateLimiter() fiber.Handler {
	return perIP(3, 5*time.Minute, "❌ Demasiados intentos de registro. Espera unos minutos.")
}
