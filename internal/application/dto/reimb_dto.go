package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewReimbRequest entrada para crear un reembolso. resolved y resolver
// no existen en la creación; el estado nace en pending.
type NewReimbRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Submitted   time.Time       `json:"submitted"`
	Description string          `json:"description" validate:"required"`
	AuthorID    int             `json:"author_id" validate:"required,min=1"`
	StatusID    int             `json:"status_id"`
	TypeID      int             `json:"type_id" validate:"required,min=1,max=4"`
}

// UpdateReimbRequest entrada para actualizar (incluida la resolución).
// reimb_status y reimb_type llegan laxos (número o string numérico) y el
// servicio los coerciona y valida contra el rango de ids enumerados.
type UpdateReimbRequest struct {
	ID          int             `json:"reimb_id"`
	Amount      decimal.Decimal `json:"amount"`
	Submitted   time.Time       `json:"submitted"`
	Resolved    *time.Time      `json:"resolved"`
	Description string          `json:"description"`
	AuthorID    int             `json:"author_id"`
	ResolverID  *int            `json:"resolver_id"`
	Status      any             `json:"reimb_status"`
	Type        any             `json:"reimb_type"`
}

// ReimbResponse salida de un reembolso con los ids de referencia y sus
// nombres resueltos.
type ReimbResponse struct {
	ID          int             `json:"reimb_id"`
	Amount      decimal.Decimal `json:"amount"`
	Submitted   time.Time       `json:"submitted"`
	Resolved    *time.Time      `json:"resolved,omitempty"`
	Description string          `json:"description"`
	AuthorID    int             `json:"author_id"`
	ResolverID  *int            `json:"resolver_id,omitempty"`
	StatusID    int             `json:"status_id"`
	Status      string          `json:"status"`
	TypeID      int             `json:"type_id"`
	Type        string          `json:"type"`
}
