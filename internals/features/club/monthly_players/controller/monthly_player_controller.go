package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/club/monthly_players/dto"
	model "clubolimpo_backend/internals/features/club/monthly_players/model"
	repository "clubolimpo_backend/internals/features/club/monthly_players/repository"
	playerRepository "clubolimpo_backend/internals/features/club/players/repository"
	helper "clubolimpo_backend/internals/helpers"
)

const (
	msgPlayerMissing  = "El jugador indicado no existe."
	msgAwardDuplicate = "El jugador ya fue elegido jugador del mes para ese mes y año."
)

type MonthlyPlayerController struct {
	Repo      *repository.MonthlyPlayerRepository
	Players   *playerRepository.PlayerRepository
	Validator *validator.Validate
}

func NewMonthlyPlayerController(repo *repository.MonthlyPlayerRepository, players *playerRepository.PlayerRepository) *MonthlyPlayerController {
	return &MonthlyPlayerController{Repo: repo, Players: players, Validator: validator.New()}
}

// checkAward enforces the player reference and one active award per player/year/month.
func (mc *MonthlyPlayerController) checkAward(c *fiber.Ctx, m *model.MonthlyPlayer) (bool, error) {
	ctx := c.UserContext()
	exists, err := mc.Players.Exists(ctx, m.PlayerID)
	if err != nil {
		return false, helper.JsonServerError(c, "Error interno del servidor al verificar el jugador.", err)
	}
	if !exists {
		return false, helper.JsonError(c, fiber.StatusBadRequest, msgPlayerMissing)
	}
	if !m.IsActive {
		return true, nil
	}
	dup, err := mc.Repo.HasActiveAward(ctx, m.PlayerID, m.Year, m.Month, m.ID)
	if err != nil {
		return false, helper.JsonServerError(c, "Error interno del servidor al verificar el jugador del mes.", err)
	}
	if dup {
		return false, helper.JsonConflict(c, msgAwardDuplicate, "player_id, year, month")
	}
	return true, nil
}

// GET /api/monthly-players
func (mc *MonthlyPlayerController) GetMonthlyPlayers(c *fiber.Ctx) error {
	rows, err := mc.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener jugadores del mes.", err)
	}
	return helper.JsonOK(c, "Jugadores del mes obtenidos.", rows)
}

// GET /api/monthly-players/:id
func (mc *MonthlyPlayerController) GetMonthlyPlayerByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	row, err := mc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el jugador del mes.")
	}
	return helper.JsonOK(c, "Jugador del mes obtenido.", row)
}

// POST /api/monthly-players
func (mc *MonthlyPlayerController) CreateMonthlyPlayer(c *fiber.Ctx) error {
	var req dto.CreateMonthlyPlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := mc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	row := req.ToModel()
	if ok, resp := mc.checkAward(c, row); !ok {
		return resp
	}
	if err := mc.Repo.Create(ctx, row); err != nil {
		return helper.RespondDBError(c, err, msgAwardDuplicate, "Error interno del servidor al crear el jugador del mes.")
	}
	created, err := mc.Repo.Reload(ctx, row.ID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al recargar el jugador del mes.", err)
	}
	return helper.JsonCreated(c, "Jugador del mes creado exitosamente.", created)
}

// PUT /api/monthly-players/:id
func (mc *MonthlyPlayerController) UpdateMonthlyPlayer(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateMonthlyPlayerRequest
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
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el jugador del mes.")
	}
	req.ApplyPatch(row)
	row.Player = nil

	if req.AwardChanged() {
		if ok, resp := mc.checkAward(c, row); !ok {
			return resp
		}
	}
	if err := mc.Repo.Save(ctx, row); err != nil {
		return helper.RespondDBError(c, err, msgAwardDuplicate, "Error interno del servidor al actualizar el jugador del mes.")
	}
	updated, err := mc.Repo.Reload(ctx, row.ID)
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al recargar el jugador del mes.", err)
	}
	return helper.JsonUpdated(c, "Jugador del mes actualizado exitosamente.", updated)
}

// PUT /api/monthly-players/delete/:id
func (mc *MonthlyPlayerController) DeleteMonthlyPlayer(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := mc.Repo.Deactivate(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Jugador del mes no encontrado.", "El jugador del mes ya está inactivo.")
	}
	return helper.JsonDeleted(c, "Jugador del mes desactivado exitosamente.", fiber.Map{"id": id})
}
