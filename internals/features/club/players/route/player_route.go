package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/club/players/controller"
)

func PlayerRoutes(api fiber.Router, ctl *controller.PlayerController, requireAuth fiber.Handler) {
	r := api.Group("/players")

	r.Get("/", ctl.GetPlayers)
	r.Get("/:id", ctl.GetPlayerByID)

	r.Post("/", requireAuth, ctl.CreatePlayer)
	r.Put("/delete/:id", requireAuth, ctl.DeletePlayer)
	r.Put("/:id", requireAuth, ctl.UpdatePlayer)
}
