package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	uploadService "clubolimpo_backend/internals/features/uploads/service"
	authService "clubolimpo_backend/internals/features/users/auth/service"
	authMiddleware "clubolimpo_backend/internals/middlewares/auth"
	"clubolimpo_backend/internals/registry"
	routeDetails "clubolimpo_backend/internals/route/details"
)

var startTime time.Time

// Deps is everything the route tree needs, built once in main.
type Deps struct {
	DB      *gorm.DB
	Repos   *registry.Repositories
	Auth    *authService.AuthService
	Uploads *uploadService.UploadService
	Log     *logrus.Logger
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.DB)

	api := app.Group("/api")
	requireAuth := authMiddleware.AuthMiddleware(d.Auth, d.Log)

	// ===================== AUTH =====================
	d.Log.Info("Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, d.Auth, d.Log, requireAuth)

	// ===================== CLUB =====================
	d.Log.Info("Setting up ClubRoutes...")
	routeDetails.ClubRoutes(api, d.Repos, requireAuth)

	// ===================== CONTENT =====================
	d.Log.Info("Setting up ContentRoutes...")
	routeDetails.ContentRoutes(api, d.Repos, requireAuth)

	// ===================== UPLOADS =====================
	d.Log.Info("Setting up UploadRoutes...")
	routeDetails.UploadRoutes(api, d.Uploads, d.Log, requireAuth)

	d.Log.Info("✅ All routes registered")
}
