package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/sponsors/controller"
)

func SponsorRoutes(api fiber.Router, ctl *controller.SponsorController, requireAuth fiber.Handler) {
	r := api.Group("/sponsors")

	r.Get("/", ctl.GetSponsors)
	r.Get("/:id", ctl.GetSponsorByID)

	r.Post("/", requireAuth, ctl.CreateSponsor)
	r.Put("/delete/:id", requireAuth, ctl.DeleteSponsor)
	r.Put("/:id", requireAuth, ctl.UpdateSponsor)
}
