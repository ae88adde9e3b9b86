package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/news/dto"
	repository "clubolimpo_backend/internals/features/content/news/repository"
	helper "clubolimpo_backend/internals/helpers"
)

const (
	newsConflictMsg    = "Ya existe una noticia con ese título o slug."
	msgUnknownCategory = "Una o más categorías no existen."
)

type NewsController struct {
	Repo      *repository.NewsRepository
	Validator *validator.Validate
	Now       func() time.Time
}

func NewNewsController(repo *repository.NewsRepository) *NewsController {
	return &NewsController{Repo: repo, Validator: validator.New(), Now: time.Now}
}

// GET /api/news?published=true|false
func (nc *NewsController) GetNews(c *fiber.Ctx) error {
	var published *bool
	if raw := strings.TrimSpace(c.Query("published")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "El parámetro published debe ser true o false.")
		}
		published = &v
	}

	rows, err := nc.Repo.ListByPublished(c.UserContext(), published)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener noticias.", err)
	}
	return helper.JsonOK(c, "Noticias obtenidas.", rows)
}

// GET /api/news/:idOrSlug
func (nc *NewsController) GetNewsByIDOrSlug(c *fiber.Ctx) error {
	key := helper.ParseIDOrSlug(c.Params("idOrSlug"))
	if !key.IsID() && key.Slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el identificador o slug de la noticia.")
	}
	row, err := nc.Repo.FindPublished(c.UserContext(), key)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener la noticia.")
	}
	return helper.JsonOK(c, "Noticia obtenida.", row)
}

// POST /api/news
func (nc *NewsController) CreateNews(c *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := nc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel(nc.Now())
	if row.Slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo generar un slug a partir del título.")
	}

	ctx := c.UserContext()
	if err := nc.Repo.CreateWithCategories(ctx, row, req.CategoryIDs); err != nil {
		if errors.Is(err, repository.ErrUnknownCategory) {
			return helper.JsonError(c, fiber.StatusBadRequest, msgUnknownCategory)
		}
		return helper.RespondDBError(c, err, newsConflictMsg, "Error interno del servidor al crear la noticia.")
	}
	created, err := nc.Repo.Reload(ctx, row.ID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al recargar la noticia.", err)
	}
	return helper.JsonCreated(c, "Noticia creada exitosamente.", created)
}

// PUT /api/news/:id
func (nc *NewsController) UpdateNews(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateNewsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if errs := req.Validate(nc.Validator); !errs.Empty() {
		return helper.PatchValidationError(c, errs)
	}

	ctx := c.UserContext()
	row, err := nc.Repo.FindActive(ctx, id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener la noticia.")
	}
	req.ApplyPatch(row)
	if row.Slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo generar un slug a partir del título.")
	}
	row.Categories = nil

	if err := nc.Repo.SaveWithCategories(ctx, row, req.Categories()); err != nil {
		if errors.Is(err, repository.ErrUnknownCategory) {
			return helper.JsonError(c, fiber.StatusBadRequest, msgUnknownCategory)
		}
		return helper.RespondDBError(c, err, newsConflictMsg, "Error interno del servidor al actualizar la noticia.")
	}
	updated, err := nc.Repo.Reload(ctx, row.ID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al recargar la noticia.", err)
	}
	return helper.JsonUpdated(c, "Noticia actualizada exitosamente.", updated)
}

// PUT /api/news/delete/:id
func (nc *NewsController) DeleteNews(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := nc.Repo.Deactivate(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Noticia no encontrada.", "La noticia ya está inactiva.")
	}
	return helper.JsonDeleted(c, "Noticia desactivada exitosamente.", fiber.Map{"id": id})
}
