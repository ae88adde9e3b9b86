package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/club/players/dto"
	repository "clubolimpo_backend/internals/features/club/players/repository"
	helper "clubolimpo_backend/internals/helpers"
)

type PlayerController struct {
	Repo      *repository.PlayerRepository
	Validator *validator.Validate
}

func NewPlayerController(repo *repository.PlayerRepository) *PlayerController {
	return &PlayerController{Repo: repo, Validator: validator.New()}
}

// GET /api/players
func (pc *PlayerController) GetPlayers(c *fiber.Ctx) error {
	rows, err := pc.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener jugadores.", err)
	}
	return helper.JsonOK(c, "Jugadores obtenidos.", rows)
}

// GET /api/players/:id
func (pc *PlayerController) GetPlayerByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	row, err := pc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el jugador.")
	}
	return helper.JsonOK(c, "Jugador obtenido.", row)
}

// POST /api/players
func (pc *PlayerController) CreatePlayer(c *fiber.Ctx) error {
	var req dto.CreatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := pc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := pc.Repo.Create(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, "Ya existe un jugador con esos datos.", "Error interno del servidor al crear el jugador.")
	}
	return helper.JsonCreated(c, "Jugador creado exitosamente.", row)
}

// PUT /api/players/:id
func (pc *PlayerController) UpdatePlayer(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if errs := req.Validate(pc.Validator); !errs.Empty() {
		return helper.PatchValidationError(c, errs)
	}

	row, err := pc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el jugador.")
	}
	req.ApplyPatch(row)
	if err := pc.Repo.Save(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, "Ya existe un jugador con esos datos.", "Error interno del servidor al actualizar el jugador.")
	}
	return helper.JsonUpdated(c, "Jugador actualizado exitosamente.", row)
}

// PUT /api/players/delete/:id
func (pc *PlayerController) DeletePlayer(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := pc.Repo.Deactivate(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Jugador no encontrado.", "La ficha de jugador ya está inactiva.")
	}
	return helper.JsonDeleted(c, "Jugador desactivado exitosamente.", fiber.Map{"id": id})
}
