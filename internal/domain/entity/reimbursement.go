package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ids de referencia de estado en ers_reimb_statuses (1..3).
const (
	StatusPending  = 1
	StatusApproved = 2
	StatusDenied   = 3
)

// Ids de referencia de tipo en ers_reimb_types (1..4).
const (
	TypeLodging = 1
	TypeTravel  = 2
	TypeFood    = 3
	TypeOther   = 4
)

// MaxStatusID y MaxTypeID acotan los ids enumerados; cualquier valor fuera
// de rango es una violación de persistencia, no un not-found.
const (
	MaxStatusID = StatusDenied
	MaxTypeID   = TypeOther
)

// StatusName resuelve el nombre de un id de estado; vacío si está fuera de catálogo.
func StatusName(statusID int) string {
	switch statusID {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusDenied:
		return "denied"
	default:
		return ""
	}
}

// TypeName resuelve el nombre de un id de tipo; vacío si está fuera de catálogo.
func TypeName(typeID int) string {
	switch typeID {
	case TypeLodging:
		return "lodging"
	case TypeTravel:
		return "travel"
	case TypeFood:
		return "food"
	case TypeOther:
		return "other"
	default:
		return ""
	}
}

// IsTerminalStatus informa si un estado cierra el reembolso.
// pending --(resolve)--> {approved, denied}; no existe un-resolve.
func IsTerminalStatus(statusID int) bool {
	return statusID == StatusApproved || statusID == StatusDenied
}

// Reimbursement representa una solicitud de reembolso.
// Resolved y ResolverID son nil hasta que un manager la resuelve; la
// resolución fija ambos junto con un estado terminal en la misma operación.
type Reimbursement struct {
	ID          int
	Amount      decimal.Decimal
	Submitted   time.Time
	Resolved    *time.Time
	Description string
	AuthorID    int
	ResolverID  *int
	StatusID    int // 1..3
	TypeID      int // 1..4
}

// NewReimbursement registro de creación: sin id, sin resolución.
type NewReimbursement struct {
	Amount      decimal.Decimal
	Submitted   time.Time
	Description string
	AuthorID    int
	StatusID    int
	TypeID      int
}
