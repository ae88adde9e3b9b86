package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/databases/crud"
	"clubolimpo_backend/internals/features/content/identity/dto"
	repository "clubolimpo_backend/internals/features/content/identity/repository"
	helper "clubolimpo_backend/internals/helpers"
)

const msgIdentityMissing = "No hay identidad institucional activa."

// IdentityController serves the single active identity row.
type IdentityController struct {
	Repo      *repository.IdentityRepository
	Validator *validator.Validate
}

func NewIdentityController(repo *repository.IdentityRepository) *IdentityController {
	return &IdentityController{Repo: repo, Validator: validator.New()}
}

// GET /api/identity
func (ic *IdentityController) GetIdentity(c *fiber.Ctx) error {
	row, err := ic.Repo.Current(c.UserContext())
	if errors.Is(err, crud.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, msgIdentityMissing)
	}
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener la identidad.", err)
	}
	return helper.JsonOK(c, "Identidad obtenida.", row)
}

// POST /api/identity
func (ic *IdentityController) CreateIdentity(c *fiber.Ctx) error {
	var req dto.CreateIdentityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := ic.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	_, err := ic.Repo.Current(ctx)
	switch {
	case err == nil:
		return helper.JsonConflict(c, "Ya existe una identidad institucional activa.", "identities.is_active")
	case !errors.Is(err, crud.ErrNotFound):
		return helper.JsonServerError(c, "Error interno del servidor al verificar la identidad.", err)
	}

	row := req.ToModel()
	if err := ic.Repo.Create(ctx, row); err != nil {
		return helper.RespondDBError(c, err, "Ya existe una identidad institucional activa.", "Error interno del servidor al crear la identidad.")
	}
	return helper.JsonCreated(c, "Identidad creada exitosamente.", row)
}

// PUT /api/identity
func (ic *IdentityController) UpdateIdentity(c *fiber.Ctx) error {
	var req dto.UpdateIdentityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if errs := req.Validate(ic.Validator); !errs.Empty() {
		return helper.PatchValidationError(c, errs)
	}

	ctx := c.UserContext()
	row, err := ic.Repo.Current(ctx)
	if errors.Is(err, crud.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, msgIdentityMissing)
	}
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener la identidad.", err)
	}
	req.ApplyPatch(row)
	if err := ic.Repo.Save(ctx, row); err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al actualizar la identidad.")
	}
	return helper.JsonUpdated(c, "Identidad actualizada exitosamente.", row)
}

// PUT /api/identity/delete
func (ic *IdentityController) DeleteIdentity(c *fiber.Ctx) error {
	ctx := c.UserContext()
	row, err := ic.Repo.Current(ctx)
	if errors.Is(err, crud.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, msgIdentityMissing)
	}
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener la identidad.", err)
	}
	if err := ic.Repo.Deactivate(ctx, row.ID); err != nil {
		return helper.RespondDeactivate(c, err, msgIdentityMissing, "La identidad ya está inactiva.")
	}
	return helper.JsonDeleted(c, "Identidad desactivada exitosamente.", fiber.Map{"id": row.ID})
}
