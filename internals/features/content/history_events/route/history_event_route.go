package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/history_events/controller"
)

func HistoryEventRoutes(api fiber.Router, ctl *controller.HistoryEventController, requireAuth fiber.Handler) {
	r := api.Group("/history-events")

	r.Get("/", ctl.GetHistoryEvents)
	r.Get("/:id", ctl.GetHistoryEventByID)

	r.Post("/", requireAuth, ctl.CreateHistoryEvent)
	r.Put("/delete/:id", requireAuth, ctl.DeleteHistoryEvent)
	r.Put("/:id", requireAuth, ctl.UpdateHistoryEvent)
}
