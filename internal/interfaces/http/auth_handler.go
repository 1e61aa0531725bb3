package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reembolsos-api/internal/application/dto"
	"github.com/jhoicas/Reembolsos-api/internal/application/service"
	"github.com/jhoicas/Reembolsos-api/internal/domain"
	"github.com/jhoicas/Reembolsos-api/pkg/jwt"
)

// AuthHandler maneja el login del principal.
type AuthHandler struct {
	users      *service.UserService
	jwtSecret  string
	jwtIssuer  string
	jwtExpMins int
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(users *service.UserService, jwtSecret, jwtIssuer string, jwtExpMins int) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret, jwtIssuer: jwtIssuer, jwtExpMins: jwtExpMins}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  domain.AppError
// @Failure      401   {object}  domain.AppError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.NewBadRequest("Request body could not be parsed."))
	}

	// Un principal vacío no es error del servicio: aquí se decide que la
	// ausencia de coincidencia es una falla de autenticación.
	user, err := h.users.AuthUser(in.Username, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return respondError(c, domain.NewAuthentication("Invalid credentials provided."))
	}

	token, err := jwt.Generate(h.jwtSecret, user.ID, user.Username, user.Role, h.jwtIssuer, h.jwtExpMins)
	if err != nil {
		return respondError(c, domain.NewInternalServer("error generating session token: "+err.Error()))
	}
	return c.JSON(dto.LoginResponse{Token: token, User: *user})
}
