package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/categories/dto"
	repository "clubolimpo_backend/internals/features/content/categories/repository"
	helper "clubolimpo_backend/internals/helpers"
)

const categoryConflictMsg = "Ya existe una categoría con ese nombre o slug."

type CategoryController struct {
	Repo      *repository.CategoryRepository
	Validator *validator.Validate
}

func NewCategoryController(repo *repository.CategoryRepository) *CategoryController {
	return &CategoryController{Repo: repo, Validator: validator.New()}
}

// GET /api/categories
func (cc *CategoryController) GetCategories(c *fiber.Ctx) error {
	rows, err := cc.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener categorías.", err)
	}
	return helper.JsonOK(c, "Categorías obtenidas.", rows)
}

// GET /api/categories/:id
func (cc *CategoryController) GetCategoryByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	row, err := cc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener la categoría.")
	}
	return helper.JsonOK(c, "Categoría obtenida.", row)
}

// POST /api/categories
func (cc *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := cc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if row.Slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No se pudo generar un slug a partir del nombre.")
	}
	if err := cc.Repo.Create(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, categoryConflictMsg, "Error interno del servidor al crear la categoría.")
	}
	return helper.JsonCreated(c, "Categoría creada exitosamente.", row)
}

// PUT /api/categories/:id
func (cc *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if errs := req.Validate(cc.Validator); !errs.Empty() {
		return helper.PatchValidationError(c, errs)
	}

	row, err := cc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener la categoría.")
	}
	req.ApplyPatch(row)
	if err := cc.Repo.Save(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, categoryConflictMsg, "Error interno del servidor al actualizar la categoría.")
	}
	return helper.JsonUpdated(c, "Categoría actualizada exitosamente.", row)
}

// PUT /api/categories/delete/:id
func (cc *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := cc.Repo.Deactivate(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Categoría no encontrada.", "La categoría ya está inactiva.")
	}
	return helper.JsonDeleted(c, "Categoría desactivada exitosamente.", fiber.Map{"id": id})
}
