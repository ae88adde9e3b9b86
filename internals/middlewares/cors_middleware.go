// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS; origins is a comma separated list
// (CORS_ALLOW_ORIGINS).
func CorsMiddleware(origins string) fiber.Handler {
	parts := make([]string, 0)
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			parts = append(parts, o)
		}
	}
	allow := strings.Join(parts, ", ")
	credentials := true
	if allow == "" || allow == "*" {
		// fiber refuses AllowCredentials with a wildcard origin
		allow = "*"
		credentials = false
	}

	return cors.New(cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: credentials,
	})
}
