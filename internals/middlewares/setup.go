package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/sirupsen/logrus"

	"clubolimpo_backend/internals/configs"
	"clubolimpo_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain; recovery stays first.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, log *logrus.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(RequestContext(log, 5*time.Second))
	app.Use(logger.LoggerMiddleware(log))
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(GlobalRateLimiter())
}
