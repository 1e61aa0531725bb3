package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reembolsos-api/internal/domain"
)

// respondError serializa el AppError como cuerpo y responde con su status.
// Un error ajeno al taxon degrada al formato 500 en vez de tumbar el handler.
func respondError(c *fiber.Ctx, err error) error {
	ae := domain.From(err)
	return c.Status(ae.StatusCode).JSON(ae)
}
