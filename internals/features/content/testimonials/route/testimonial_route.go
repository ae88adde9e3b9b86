package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/testimonials/controller"
)

func TestimonialRoutes(api fiber.Router, ctl *controller.TestimonialController, requireAuth fiber.Handler) {
	r := api.Group("/testimonials")

	r.Get("/", ctl.GetTestimonials)
	r.Get("/:id", ctl.GetTestimonialByID)

	r.Post("/", requireAuth, ctl.CreateTestimonial)
	r.Put("/delete/:id", requireAuth, ctl.DeleteTestimonial)
	r.Put("/:id", requireAuth, ctl.UpdateTestimonial)
}
