package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"clubolimpo_backend/internals/features/content/testimonials/dto"
	repository "clubolimpo_backend/internals/features/content/testimonials/repository"
	helper "clubolimpo_backend/internals/helpers"
)

type TestimonialController struct {
	Repo      *repository.TestimonialRepository
	Validator *validator.Validate
}

func NewTestimonialController(repo *repository.TestimonialRepository) *TestimonialController {
	return &TestimonialController{Repo: repo, Validator: validator.New()}
}

// GET /api/testimonials
func (tc *TestimonialController) GetTestimonials(c *fiber.Ctx) error {
	rows, err := tc.Repo.List(c.UserContext())
	if err != nil {
		return helper.JsonServerError(c, "Error interno del servidor al obtener testimonios.", err)
	}
	return helper.JsonOK(c, "Testimonios obtenidos.", rows)
}

// GET /api/testimonials/:id
func (tc *TestimonialController) GetTestimonialByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	row, err := tc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el testimonio.")
	}
	return helper.JsonOK(c, "Testimonio obtenido.", row)
}

// POST /api/testimonials
func (tc *TestimonialController) CreateTestimonial(c *fiber.Ctx) error {
	var req dto.CreateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := tc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel(helper.Today())
	if err := tc.Repo.Create(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, "Ya existe un testimonio con esos datos.", "Error interno del servidor al crear el testimonio.")
	}
	return helper.JsonCreated(c, "Testimonio creado exitosamente.", row)
}

// PUT /api/testimonials/:id
func (tc *TestimonialController) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if errs := req.Validate(tc.Validator); !errs.Empty() {
		return helper.PatchValidationError(c, errs)
	}

	row, err := tc.Repo.FindActive(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener el testimonio.")
	}
	req.ApplyPatch(row)
	if err := tc.Repo.Save(c.UserContext(), row); err != nil {
		return helper.RespondDBError(c, err, "Ya existe un testimonio con esos datos.", "Error interno del servidor al actualizar el testimonio.")
	}
	return helper.JsonUpdated(c, "Testimonio actualizado exitosamente.", row)
}

// PUT /api/testimonials/delete/:id
func (tc *TestimonialController) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return err
	}
	if err := tc.Repo.Deactivate(c.UserContext(), id); err != nil {
		return helper.RespondDeactivate(c, err, "Testimonio no encontrado.", "El testimonio ya está inactivo.")
	}
	return helper.JsonDeleted(c, "Testimonio desactivado exitosamente.", fiber.Map{"id": id})
}
