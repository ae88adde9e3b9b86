package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	uploadController "clubolimpo_backend/internals/features/uploads/controller"
	uploadRoute "clubolimpo_backend/internals/features/uploads/route"
	uploadService "clubolimpo_backend/internals/features/uploads/service"
)

func UploadRoutes(api fiber.Router, svc *uploadService.UploadService, log logrus.FieldLogger, requireAuth fiber.Handler) {
	uploadRoute.UploadRoutes(api, uploadController.NewUploadController(svc, log), requireAuth)
}
