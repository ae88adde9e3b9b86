package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"clubolimpo_backend/internals/features/users/auth/dto"
	"clubolimpo_backend/internals/features/users/auth/service"
	helper "clubolimpo_backend/internals/helpers"
	authMiddleware "clubolimpo_backend/internals/middlewares/auth"
)

type AuthController struct {
	Service   *service.AuthService
	Validator *validator.Validate
	Log       logrus.FieldLogger
}

func NewAuthController(svc *service.AuthService, log logrus.FieldLogger) *AuthController {
	return &AuthController{
		Service:   svc,
		Validator: validator.New(),
		Log:       log,
	}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	req.Normalize()
	if err := ac.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ac.Service.Register(c.UserContext(), req.Username, req.Password, req.Email)
	if errors.Is(err, service.ErrAdminExists) {
		return helper.JsonError(c, fiber.StatusConflict, "Ya existe un usuario. Solo se permite un administrador.")
	}
	if err != nil {
		ac.Log.WithError(err).Error("register failed")
		return helper.RespondDBError(c, err, "El usuario o el email ya existen.", "Error interno del servidor al registrar usuario.")
	}

	return helper.JsonCreated(c, "Usuario registrado exitosamente.", dto.FromUser(user))
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de solicitud inválido.")
	}
	if err := ac.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, exp, user, err := ac.Service.Login(c.UserContext(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas.")
	}
	if err != nil {
		ac.Log.WithError(err).Error("login failed")
		return helper.JsonServerError(c, "Error interno del servidor al iniciar sesión.", err)
	}

	return helper.JsonOK(c, "Inicio de sesión exitoso.", dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.FromUser(user),
	})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	id := authMiddleware.UserID(c)
	if id == 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Acceso denegado.")
	}
	user, err := ac.Service.Users.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.RespondDBError(c, err, "", "Error interno del servidor al obtener usuario.")
	}
	return helper.JsonOK(c, "ok", dto.FromUser(user))
}
