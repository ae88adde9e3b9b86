package controller

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"clubolimpo_backend/internals/features/uploads/service"
	helper "clubolimpo_backend/internals/helpers"
)

// Field names accepted for the file part, in order of preference.
var fileFields = []string{"image", "newsImage", "historyImage", "file"}

type UploadController struct {
	Service *service.UploadService
	Log     logrus.FieldLogger
}

func NewUploadController(svc *service.UploadService, log logrus.FieldLogger) *UploadController {
	return &UploadController{Service: svc, Log: log}
}

func pickFile(form *multipart.Form) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	for _, name := range fileFields {
		if fhs := form.File[name]; len(fhs) > 0 && fhs[0] != nil {
			return fhs[0]
		}
	}
	return nil
}

// POST /api/upload/:kind and /api/upload/:kind/:type
func (uc *UploadController) Upload(c *fiber.Ctx) error {
	dir, err := service.ResolveDir(c.Params("kind"), c.Params("type"))
	switch {
	case errors.Is(err, service.ErrUnknownKind):
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipo de recurso de subida no válido.")
	case errors.Is(err, service.ErrUnknownType):
		return helper.JsonError(c, fiber.StatusBadRequest, "Variante de imagen no válida para este recurso.")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Se esperaba un formulario multipart con una imagen.")
	}
	fh := pickFile(form)
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se ha subido ningún archivo.")
	}

	obj, err := uc.Service.Save(c.UserContext(), dir, fh)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrTooLarge):
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "El archivo excede el tamaño máximo de 5MB.")
	case errors.Is(err, service.ErrMimeNotAllowed):
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipo de archivo no permitido. Solo se aceptan JPEG, PNG, GIF y WebP.")
	case errors.Is(err, service.ErrEmptyFile):
		return helper.JsonError(c, fiber.StatusBadRequest, "No se ha subido ningún archivo.")
	default:
		uc.Log.WithError(err).WithField("dir", dir).Error("❌ upload failed")
		return helper.JsonServerError(c, "Error interno del servidor al subir la imagen.", err)
	}

	uc.Log.WithFields(logrus.Fields{"dir": dir, "key": obj.Key, "driver": uc.Service.Store.Driver()}).Info("🖼️ image uploaded")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"message":  "Imagen subida exitosamente.",
		"fileName": obj.FileName,
		"imageUrl": obj.URL,
	})
}
