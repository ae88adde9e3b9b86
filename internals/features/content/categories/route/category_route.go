package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/categories/controller"
)

func CategoryRoutes(api fiber.Router, ctl *controller.CategoryController, requireAuth fiber.Handler) {
	r := api.Group("/categories")

	r.Get("/", ctl.GetCategories)
	r.Get("/:id", ctl.GetCategoryByID)

	r.Post("/", requireAuth, ctl.CreateCategory)
	r.Put("/delete/:id", requireAuth, ctl.DeleteCategory)
	r.Put("/:id", requireAuth, ctl.UpdateCategory)
}
