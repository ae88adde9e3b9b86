package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/uploads/controller"
)

func UploadRoutes(api fiber.Router, ctl *controller.UploadController, requireAuth fiber.Handler) {
	r := api.Group("/upload", requireAuth)

	r.Post("/:kind", ctl.Upload)
	r.Post("/:kind/:type", ctl.Upload)
}
