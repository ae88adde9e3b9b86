package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/club/monthly_players/controller"
)

func MonthlyPlayerRoutes(api fiber.Router, ctl *controller.MonthlyPlayerController, requireAuth fiber.Handler) {
	r := api.Group("/monthly-players")

	r.Get("/", ctl.GetMonthlyPlayers)
	r.Get("/:id", ctl.GetMonthlyPlayerByID)

	r.Post("/", requireAuth, ctl.CreateMonthlyPlayer)
	r.Put("/delete/:id", requireAuth, ctl.DeleteMonthlyPlayer)
	r.Put("/:id", requireAuth, ctl.UpdateMonthlyPlayer)
}
