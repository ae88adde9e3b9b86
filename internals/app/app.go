// Package app assembles the fiber application: config, global middleware,
// static uploads and the route tree.
package app

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/configs"
	helper "clubolimpo_backend/internals/helpers"
	middlewares "clubolimpo_backend/internals/middlewares"
	routes "clubolimpo_backend/internals/route"
)

// BodyLimit must stay above uploadService.MaxUploadSize.
const BodyLimit = 10 * 1024 * 1024

func New(cfg *configs.Config, deps routes.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		BodyLimit:             BodyLimit,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	middlewares.SetupMiddlewares(app, cfg, deps.Log)

	if strings.EqualFold(cfg.Storage.Driver, "local") || cfg.Storage.Driver == "" {
		app.Static(cfg.Storage.PublicPath, cfg.Storage.UploadDir, fiber.Static{
			Compress: true,
			MaxAge:   86400,
		})
	}

	routes.SetupRoutes(app, deps)
	return app
}
