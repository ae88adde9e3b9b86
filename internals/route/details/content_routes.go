package details

import (
	"github.com/gofiber/fiber/v2"

	categoryController "clubolimpo_backend/internals/features/content/categories/controller"
	categoryRoute "clubolimpo_backend/internals/features/content/categories/route"
	eventController "clubolimpo_backend/internals/features/content/history_events/controller"
	eventRoute "clubolimpo_backend/internals/features/content/history_events/route"
	subsectionController "clubolimpo_backend/internals/features/content/history_subsections/controller"
	subsectionRoute "clubolimpo_backend/internals/features/content/history_subsections/route"
	identityController "clubolimpo_backend/internals/features/content/identity/controller"
	identityRoute "clubolimpo_backend/internals/features/content/identity/route"
	newsController "clubolimpo_backend/internals/features/content/news/controller"
	newsRoute "clubolimpo_backend/internals/features/content/news/route"
	sponsorController "clubolimpo_backend/internals/features/content/sponsors/controller"
	sponsorRoute "clubolimpo_backend/internals/features/content/sponsors/route"
	testimonialController "clubolimpo_backend/internals/features/content/testimonials/controller"
	testimonialRoute "clubolimpo_backend/internals/features/content/testimonials/route"
	"clubolimpo_backend/internals/registry"
)

func ContentRoutes(api fiber.Router, repos *registry.Repositories, requireAuth fiber.Handler) {
	categoryRoute.CategoryRoutes(api, categoryController.NewCategoryController(repos.Categories), requireAuth)
	newsRoute.NewsRoutes(api, newsController.NewNewsController(repos.News), requireAuth)
	eventRoute.HistoryEventRoutes(api, eventController.NewHistoryEventController(repos.HistoryEvents), requireAuth)
	subsectionRoute.HistorySubsectionRoutes(api, subsectionController.NewHistorySubsectionController(repos.HistorySubsections), requireAuth)
	sponsorRoute.SponsorRoutes(api, sponsorController.NewSponsorController(repos.Sponsors), requireAuth)
	testimonialRoute.TestimonialRoutes(api, testimonialController.NewTestimonialController(repos.Testimonials), requireAuth)
	identityRoute.IdentityRoutes(api, identityController.NewIdentityController(repos.Identity), requireAuth)
}
