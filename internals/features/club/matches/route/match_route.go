package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/club/matches/controller"
)

func MatchRoutes(api fiber.Router, ctl *controller.MatchController, requireAuth fiber.Handler) {
	r := api.Group("/matches")

	r.Get("/", ctl.GetMatches)
	r.Get("/:id", ctl.GetMatchByID)

	r.Post("/", requireAuth, ctl.CreateMatch)
	r.Put("/delete/:id", requireAuth, ctl.DeleteMatch)
	r.Put("/:id", requireAuth, ctl.UpdateMatch)
}
