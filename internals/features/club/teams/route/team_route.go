package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/club/teams/controller"
)

func TeamRoutes(api fiber.Router, ctl *controller.TeamController, requireAuth fiber.Handler) {
	r := api.Group("/teams")

	r.Get("/", ctl.GetTeams)
	r.Get("/:id", ctl.GetTeamByID)

	r.Post("/", requireAuth, ctl.CreateTeam)
	r.Put("/delete/:id", requireAuth, ctl.DeleteTeam)
	r.Put("/:id", requireAuth, ctl.UpdateTeam)
}
