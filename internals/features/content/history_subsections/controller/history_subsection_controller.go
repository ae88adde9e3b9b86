package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/history_subsections/dto"
	model "clubolimpo_backend/internals/features/content/history_subsections/model"
	repository "clubolimpo_backend/internals/features/content/history_subsections/repository"
	helper "clubolimpo_backend/internals/helpers"
)

const (
	subsectionConflictMsg = "Ya existe una subsección con ese slug."
	msgParentMissing      = "El evento histórico indicado no existe o está inactivo."
)

type HistorySubsectionController struct {
	Repo      *repository.HistorySubsectionRepository
	Validator *validator.Validate
}

func NewHistorySubsectionController(repo *repository.HistorySubsectionRepository) *HistorySubsectionController {
	return &HistorySubsectionController{Repo: repo, Validator: validator.New()}
}

// GET /api/history-subsections[?eventId=]
func (hc *HistorySubsectionController) GetHistorySubsections(c *fiber.Ctx) error {
	var (
		rows []model.HistorySubsection
		err  error
	)
	if raw := strings.TrimSpace(c.Query("eventId")); raw != "" {
		key := helper.ParseIDOrSlug(raw)
		if !key.IsID() {
			return helper.JsonError(c, fiber.StatusBadRequest, "El parámetro eventId debe ser un entero positivo.")
		}
		rows, err = hc.Repo.ListByEvent(c.UserContext(), key.ID)
	} else {
		rows, err = hc.Repo.List(c.UserContext())
	}
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener subsecciones.", err)
	}
	return helper.JsonOK(c, "Subsecciones obtenidas.", rows)
}

// GET /api/history-subsections/:id
func (hc *HistorySubsectionController) GetHistorySubsectionByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	row, err := hc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener la subsección.")
	}
	return helper.JsonOK(c, "Subsección obtenida.", row)
}

// POST /api/history-subsections
func (hc *HistorySubsectionController) CreateHistorySubsection(c *fiber.Ctx) error {
	var req dto.CreateHistorySubsectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := hc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	ok, err := hc.Repo.ParentActive(ctx, req.HistoryEventID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al verificar el evento histórico.", err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, msgParentMissing)
	}

	row := req.ToModel()
	if row.Slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo generar un slug a partir del título.")
	}
	if err := hc.Repo.Create(ctx, row); err != nil {
		return helper.RespondDBError(c, err, subsectionConflictMsg, "Error interno del servidor al crear la subsección.")
	}
	return helper.JsonCreated(c, "Subsección creada exitosamente.", row)
}

// PUT /api/history-subsections/:id
func (hc *HistorySubsectionController) UpdateHistorySubsection(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateHistorySubsectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if errs := req.Validate(hc.Validator); !errs.Empty() {
		return helper.PatchValidationError(c, errs)
	}

	ctx := c.UserContext()
	row, err := hc.Repo.FindActive(ctx, id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener la subsección.")
	}
	req.ApplyPatch(row)
	if row.Slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo generar un slug a partir del título.")
	}
	if req.HistoryEventID.Set() {
		ok, err := hc.Repo.ParentActive(ctx, row.HistoryEventID)
		if err != nil {
			return helper.JsonServerError(c, "Error interno del servidor al verificar el evento histórico.", err)
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, msgParentMissing)
		}
	}
	if err := hc.Repo.Save(ctx, row); err != nil {
		return helper.RespondDBError(c, err, subsectionConflictMsg, "Error interno del servidor al actualizar la subsección.")
	}
	return helper.JsonUpdated(c, "Subsección actualizada exitosamente.", row)
}

// PUT /api/history-subsections/delete/:id
func (hc *HistorySubsectionController) DeleteHistorySubsection(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := hc.Repo.Deactivate(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Subsección no encontrada.", "La subsección ya está inactiva.")
	}
	return helper.JsonDeleted(c, "Subsección desactivada exitosamente.", fiber.Map{"id": id})
}
