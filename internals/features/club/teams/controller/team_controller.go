package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/club/teams/dto"
	repository "clubolimpo_backend/internals/features/club/teams/repository"
	helper "clubolimpo_backend/internals/helpers"
)

const teamConflictMsg = "Ya existe un equipo con ese nombre o abreviatura."

type TeamController struct {
	Repo      *repository.TeamRepository
	Validator *validator.Validate
}

func NewTeamController(repo *repository.TeamRepository) *TeamController {
	return &TeamController{Repo: repo, Validator: validator.New()}
}

// GET /api/teams
func (tc *TeamController) GetTeams(c *fiber.Ctx) error {
	rows, err := tc.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener equipos.", err)
	}
	return helper.JsonOK(c, "Equipos obtenidos.", rows)
}

// GET /api/teams/:id
func (tc *TeamController) GetTeamByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	row, err := tc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el equipo.")
	}
	return helper.JsonOK(c, "Equipo obtenido.", row)
}

// POST /api/teams
func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	var req dto.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := tc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := tc.Repo.Create(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, teamConflictMsg, "Error interno del servidor al crear el equipo.")
	}
	return helper.JsonCreated(c, "Equipo creado exitosamente.", row)
}

// PUT /api/teams/:id
func (tc *TeamController) UpdateTeam(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if errs := req.Validate(tc.Validator); !errs.Empty() {
		return helper.PatchValidationError(c, errs)
	}

	row, err := tc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el equipo.")
	}
	req.ApplyPatch(row)
	if err := tc.Repo.Save(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, teamConflictMsg, "Error interno del servidor al actualizar el equipo.")
	}
	return helper.JsonUpdated(c, "Equipo actualizado exitosamente.", row)
}

// PUT /api/teams/delete/:id
func (tc *TeamController) DeleteTeam(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := tc.Repo.Deactivate(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Equipo no encontrado.", "El equipo ya está inactivo.")
	}
	return helper.JsonDeleted(c, "Equipo desactivado exitosamente.", fiber.Map{"id": id})
}
