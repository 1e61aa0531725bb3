package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reembolsos-api/internal/application/dto"
	"github.com/jhoicas/Reembolsos-api/internal/application/service"
	"github.com/jhoicas/Reembolsos-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP para User (solo admin).
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler construye el handler.
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetAll godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      404  {object}  domain.AppError
// @Router       /api/users [get]
func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.svc.GetAllUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetByID godoc
// @Summary      Obtener usuario por id
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "Id del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  domain.AppError
// @Failure      404  {object}  domain.AppError
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.NewBadRequest("Provided id is not a number"))
	}
	user, err := h.svc.GetUserByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  domain.AppError
// @Failure      409   {object}  domain.AppError
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.NewUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.NewBadRequest("Request body could not be parsed."))
	}
	user, err := h.svc.AddNewUser(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUserRequest  true  "Usuario completo con id"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  domain.AppError
// @Router       /api/users [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.NewBadRequest("Request body could not be parsed."))
	}
	updated, err := h.svc.UpdateUser(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}

// Delete godoc
// @Summary      Eliminar usuario por id
// @Tags         users
// @Security     Bearer
// @Param        id  path  int  true  "Id del usuario"
// @Success      204
// @Failure      400  {object}  domain.AppError
// @Failure      404  {object}  domain.AppError
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.NewBadRequest("Provided id is not a number"))
	}
	deleted, err := h.svc.DeleteUserByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return respondError(c, domain.NewResourceNotFound("No user found to delete with the given id."))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
