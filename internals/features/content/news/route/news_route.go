package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/news/controller"
)

func NewsRoutes(api fiber.Router, ctl *controller.NewsController, requireAuth fiber.Handler) {
	r := api.Group("/news")

	r.Get("/", ctl.GetNews)
	r.Get("/:idOrSlug", ctl.GetNewsByIDOrSlug)

	r.Post("/", requireAuth, ctl.CreateNews)
	r.Put("/delete/:id", requireAuth, ctl.DeleteNews)
	r.Put("/:id", requireAuth, ctl.UpdateNews)
}
