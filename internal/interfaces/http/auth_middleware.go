package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reembolsos-api/internal/domain"
	"github.com/jhoicas/Reembolsos-api/pkg/jwt"
)

// Locals keys para el principal en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// AuthMiddleware valida el Bearer Token JWT y carga el principal
// (user_id, username, role) en c.Locals. Sin sesión válida responde 401
// con el error Authentication del taxon.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return respondError(c, domain.NewAuthentication("No session found, please login."))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return respondError(c, domain.NewAuthentication("Authorization header is not a Bearer token."))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return respondError(c, domain.NewAuthentication("Empty token provided."))
		}
		userID, username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return respondError(c, domain.NewAuthentication("Invalid or expired token."))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza el acceso solo a los roles indicados; el resto
// recibe 403 con el error Authorization del taxon.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return respondError(c, domain.NewAuthentication("Principal has no role."))
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return respondError(c, domain.NewAuthorization(""))
	}
}

// GetUserID devuelve el id del principal (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int {
	v, _ := c.Locals(LocalUserID).(int)
	return v
}

// GetUsername devuelve el username del principal.
func GetUsername(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUsername).(string)
	return v
}

// GetRole devuelve el rol del principal.
func GetRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRole).(string)
	return v
}
