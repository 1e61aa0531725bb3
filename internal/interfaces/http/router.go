package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reembolsos-api/internal/application/service"
	"github.com/jhoicas/Reembolsos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Users      *service.UserService
	Reimbs     *service.ReimbService
	JWTSecret  string
	JWTIssuer  string
	JWTExpMins int
}

// Router registra las rutas de la API. La gestión de usuarios es solo
// admin; listar y resolver reembolsos es de manager o admin; presentar y
// consultar reembolsos propios requiere solo sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Users, deps.JWTSecret, deps.JWTIssuer, deps.JWTExpMins)
	api.Post("/auth/login", authHandler.Login)

	// Users (protegido, solo admin)
	users := api.Group("/users", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.Users)
	users.Get("/", userHandler.GetAll)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Reimbursements (protegido)
	reimbs := api.Group("/reimbursements", AuthMiddleware(deps.JWTSecret))
	reimbHandler := NewReimbHandler(deps.Reimbs)
	reimbs.Get("/", RequireRole(entity.RoleManager, entity.RoleAdmin), reimbHandler.GetAll)
	reimbs.Get("/author/:id", reimbHandler.GetByAuthor)
	reimbs.Get("/:id", reimbHandler.GetByID)
	reimbs.Post("/", reimbHandler.Create)
	reimbs.Put("/", RequireRole(entity.RoleManager, entity.RoleAdmin), reimbHandler.Update)
}
