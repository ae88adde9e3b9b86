package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/club/matches/dto"
	repository "clubolimpo_backend/internals/features/club/matches/repository"
	teamRepository "clubolimpo_backend/internals/features/club/teams/repository"
	helper "clubolimpo_backend/internals/helpers"
)

const msgTeamsMissing = "Uno o ambos equipos (local/visitante) no existen."

type MatchController struct {
	Repo      *repository.MatchRepository
	Teams     *teamRepository.TeamRepository
	Validator *validator.Validate
}

func NewMatchController(repo *repository.MatchRepository, teams *teamRepository.TeamRepository) *MatchController {
	return &MatchController{Repo: repo, Teams: teams, Validator: validator.New()}
}

// GET /api/matches
func (mc *MatchController) GetMatches(c *fiber.Ctx) error {
	rows, err := mc.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener partidos.", err)
	}
	return helper.JsonOK(c, "Partidos obtenidos.", rows)
}

// GET /api/matches/:id
func (mc *MatchController) GetMatchByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	row, err := mc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el partido.")
	}
	return helper.JsonOK(c, "Partido obtenido.", row)
}

// POST /api/matches
func (mc *MatchController) CreateMatch(c *fiber.Ctx) error {
	var req dto.CreateMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := mc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	ok, err := mc.Teams.AllExist(ctx, req.HomeTeamID, req.AwayTeamID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al verificar equipos.", err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, msgTeamsMissing)
	}

	row := req.ToModel()
	if req.Order == nil {
		next, err := mc.Repo.NextOrder(ctx)
		if err != nil {
			return helper.JsonServerError(c, "Error interno del servidor al calcular el orden.", err)
		}
		row.Order = next
	}

	if err := mc.Repo.Create(ctx, row); err != nil {
		return helper.RespondDBError(c, err, "Ya existe un partido con esos datos.", "Error interno del servidor al crear el partido.")
	}
	created, err := mc.Repo.Reload(ctx, row.ID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al recargar el partido.", err)
	}
	return helper.JsonCreated(c, "Partido creado exitosamente.", created)
}

// PUT /api/matches/:id
func (mc *MatchController) UpdateMatch(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if errs := req.Validate(mc.Validator); !errs.Empty() {
		return helper.PatchValidationError(c, errs)
	}

	ctx := c.UserContext()
	row, err := mc.Repo.FindActive(ctx, id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el partido.")
	}
	req.ApplyPatch(row)

	if req.TeamsChanged() {
		ok, err := mc.Teams.AllExist(ctx, row.HomeTeamID, row.AwayTeamID)
		if err != nil {
			return helper.JsonServerError(c, "Error interno del servidor al verificar equipos.", err)
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, msgTeamsMissing)
		}
	}

	row.HomeTeam, row.AwayTeam = nil, nil
	if err := mc.Repo.Save(ctx, row); err != nil {
		return helper.RespondDBError(c, err, "Ya existe un partido con esos datos.", "Error interno del servidor al actualizar el partido.")
	}
	updated, err := mc.Repo.Reload(ctx, row.ID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al recargar el partido.", err)
	}
	return helper.JsonUpdated(c, "Partido actualizado exitosamente.", updated)
}

// PUT /api/matches/delete/:id
func (mc *MatchController) DeleteMatch(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := mc.Repo.Deactivate(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Partido no encontrado.", "El partido ya está inactivo.")
	}
	return helper.JsonDeleted(c, "Partido desactivado exitosamente.", fiber.Map{"id": id})
}
