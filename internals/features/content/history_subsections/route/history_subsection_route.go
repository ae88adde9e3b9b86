package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/history_subsections/controller"
)

func HistorySubsectionRoutes(api fiber.Router, ctl *controller.HistorySubsectionController, requireAuth fiber.Handler) {
	r := api.Group("/history-subsections")

	r.Get("/", ctl.GetHistorySubsections)
	r.Get("/:id", ctl.GetHistorySubsectionByID)

	r.Post("/", requireAuth, ctl.CreateHistorySubsection)
	r.Put("/delete/:id", requireAuth, ctl.DeleteHistorySubsection)
	r.Put("/:id", requireAuth, ctl.UpdateHistorySubsection)
}
