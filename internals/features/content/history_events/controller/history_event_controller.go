package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/history_events/dto"
	repository "clubolimpo_backend/internals/features/content/history_events/repository"
	helper "clubolimpo_backend/internals/helpers"
)

const historyEventConflictMsg = "Ya existe un evento histórico con ese título o slug."

type HistoryEventController struct {
	Repo      *repository.HistoryEventRepository
	Validator *validator.Validate
}

func NewHistoryEventController(repo *repository.HistoryEventRepository) *HistoryEventController {
	return &HistoryEventController{Repo: repo, Validator: validator.New()}
}

// GET /api/history-events
func (hc *HistoryEventController) GetHistoryEvents(c *fiber.Ctx) error {
	rows, err := hc.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener eventos históricos.", err)
	}
	return helper.JsonOK(c, "Eventos históricos obtenidos.", rows)
}

// GET /api/history-events/:id
func (hc *HistoryEventController) GetHistoryEventByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	row, err := hc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el evento histórico.")
	}
	return helper.JsonOK(c, "Evento histórico obtenido.", row)
}

// POST /api/history-events
func (hc *HistoryEventController) CreateHistoryEvent(c *fiber.Ctx) error {
	var req dto.CreateHistoryEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := hc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if row.Slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo generar un slug a partir del título.")
	}
	ctx := c.UserContext()
	if err := hc.Repo.Create(ctx, row); err != nil {
		return helper.RespondDBError(c, err, historyEventConflictMsg, "Error interno del servidor al crear el evento histórico.")
	}
	created, err := hc.Repo.Reload(ctx, row.ID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al recargar el evento histórico.", err)
	}
	return helper.JsonCreated(c, "Evento histórico creado exitosamente.", created)
}

// PUT /api/history-events/:id
func (hc *HistoryEventController) UpdateHistoryEvent(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateHistoryEventRequest
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
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el evento histórico.")
	}
	req.ApplyPatch(row)
	if row.Slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo generar un slug a partir del título.")
	}
	row.Subsections = nil
	if err := hc.Repo.Update(ctx, row); err != nil {
		return helper.RespondDBError(c, err, historyEventConflictMsg, "Error interno del servidor al actualizar el evento histórico.")
	}
	updated, err := hc.Repo.Reload(ctx, row.ID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al recargar el evento histórico.", err)
	}
	return helper.JsonUpdated(c, "Evento histórico actualizado exitosamente.", updated)
}

// PUT /api/history-events/delete/:id (subsections go inactive with it)
func (hc *HistoryEventController) DeleteHistoryEvent(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := hc.Repo.DeactivateCascade(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Evento histórico no encontrado.", "El evento histórico ya está inactivo.")
	}
	return helper.JsonDeleted(c, "Evento histórico desactivado exitosamente.", fiber.Map{"id": id})
}
