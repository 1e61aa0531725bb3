package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reembolsos-api/internal/application/dto"
	"github.com/jhoicas/Reembolsos-api/internal/application/service"
	"github.com/jhoicas/Reembolsos-api/internal/domain"
)

// ReimbHandler maneja las peticiones HTTP para Reimbursement.
type ReimbHandler struct {
	svc *service.ReimbService
}

// NewReimbHandler construye el handler.
func NewReimbHandler(svc *service.ReimbService) *ReimbHandler {
	return &ReimbHandler{svc: svc}
}

// GetAll godoc
// @Summary      Listar reembolsos
// @Tags         reimbursements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReimbResponse
// @Failure      404  {object}  domain.AppError
// @Router       /api/reimbursements [get]
func (h *ReimbHandler) GetAll(c *fiber.Ctx) error {
	reimbs, err := h.svc.GetAllReimbs()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reimbs)
}

// GetByID godoc
// @Summary      Obtener reembolso por id
// @Tags         reimbursements
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "Id del reembolso"
// @Success      200  {object}  dto.ReimbResponse
// @Failure      400  {object}  domain.AppError
// @Failure      404  {object}  domain.AppError
// @Router       /api/reimbursements/{id} [get]
func (h *ReimbHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.NewBadRequest("Provided id is not a number"))
	}
	reimb, err := h.svc.GetReimbByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reimb)
}

// GetByAuthor godoc
// @Summary      Listar reembolsos de un autor
// @Tags         reimbursements
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "Id del autor"
// @Success      200  {array}   dto.ReimbResponse
// @Failure      400  {object}  domain.AppError
// @Failure      404  {object}  domain.AppError
// @Router       /api/reimbursements/author/{id} [get]
func (h *ReimbHandler) GetByAuthor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, domain.NewBadRequest("Provided id is not a number"))
	}
	reimbs, err := h.svc.GetReimbsByUserID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reimbs)
}

// Create godoc
// @Summary      Crear reembolso
// @Tags         reimbursements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewReimbRequest  true  "Datos del reembolso"
// @Success      201   {object}  dto.ReimbResponse
// @Failure      400   {object}  domain.AppError
// @Failure      409   {object}  domain.AppError
// @Router       /api/reimbursements [post]
func (h *ReimbHandler) Create(c *fiber.Ctx) error {
	var in dto.NewReimbRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.NewBadRequest("Request body could not be parsed."))
	}
	reimb, err := h.svc.AddNewReimb(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reimb)
}

// Update godoc
// @Summary      Actualizar / resolver reembolso
// @Tags         reimbursements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateReimbRequest  true  "Reembolso completo con reimb_id"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  domain.AppError
// @Failure      409   {object}  domain.AppError
// @Router       /api/reimbursements [put]
func (h *ReimbHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReimbRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.NewBadRequest("Request body could not be parsed."))
	}
	updated, err := h.svc.UpdateReimb(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": updated})
}
