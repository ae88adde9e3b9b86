package route

import (
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/identity/controller"
)

// IdentityRoutes: singleton resource, no :id segment.
func IdentityRoutes(api fiber.Router, ctl *controller.IdentityController, requireAuth fiber.Handler) {
	r := api.Group("/identity")

	r.Get("/", ctl.GetIdentity)
	r.Post("/", requireAuth, ctl.CreateIdentity)
	r.Put("/", requireAuth, ctl.UpdateIdentity)
	r.Put("/delete", requireAuth, ctl.DeleteIdentity)
}
