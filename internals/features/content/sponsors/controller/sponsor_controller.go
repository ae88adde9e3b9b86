package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/sponsors/dto"
	repository "clubolimpo_backend/internals/features/content/sponsors/repository"
	helper "clubolimpo_backend/internals/helpers"
)

const (
	sponsorConflictMsg = "Ya existe un patrocinador con ese nombre."
	msgBadDateRange    = "La fecha de fin no puede ser anterior a la fecha de inicio."
)

type SponsorController struct {
	Repo      *repository.SponsorRepository
	Validator *validator.Validate
}

func NewSponsorController(repo *repository.SponsorRepository) *SponsorController {
	return &SponsorController{Repo: repo, Validator: validator.New()}
}

// GET /api/sponsors
func (sc *SponsorController) GetSponsors(c *fiber.Ctx) error {
	rows, err := sc.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener patrocinadores.", err)
	}
	return helper.JsonOK(c, "Patrocinadores obtenidos.", rows)
}

// GET /api/sponsors/:id
func (sc *SponsorController) GetSponsorByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	row, err := sc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el patrocinador.")
	}
	return helper.JsonOK(c, "Patrocinador obtenido.", row)
}

// POST /api/sponsors
func (sc *SponsorController) CreateSponsor(c *fiber.Ctx) error {
	var req dto.CreateSponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := sc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !dto.DateRangeValid(req.StartDate, req.EndDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, msgBadDateRange)
	}

	row := req.ToModel()
	if err := sc.Repo.Create(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, sponsorConflictMsg, "Error interno del servidor al crear el patrocinador.")
	}
	return helper.JsonCreated(c, "Patrocinador creado exitosamente.", row)
}

// PUT /api/sponsors/:id
func (sc *SponsorController) UpdateSponsor(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSponsorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if errs := req.Validate(sc.Validator); !errs.Empty() {
		return helper.PatchValidationError(c, errs)
	}

	row, err := sc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el patrocinador.")
	}
	req.ApplyPatch(row)
	if !dto.DateRangeValid(row.StartDate, row.EndDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, msgBadDateRange)
	}
	if err := sc.Repo.Save(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, sponsorConflictMsg, "Error interno del servidor al actualizar el patrocinador.")
	}
	return helper.JsonUpdated(c, "Patrocinador actualizado exitosamente.", row)
}

// PUT /api/sponsors/delete/:id
func (sc *SponsorController) DeleteSponsor(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := sc.Repo.Deactivate(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Patrocinador no encontrado.", "El patrocinador ya está inactivo.")
	}
	return helper.JsonDeleted(c, "Patrocinador desactivado exitosamente.", fiber.Map{"id": id})
}
