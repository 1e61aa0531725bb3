package service

import (
	"context"

	"github.com/jhoicas/Reembolsos-api/internal/domain/repository"
)

// UserTxRunner corre un callback con un UserRepository atado a una
// transacción: los pre-chequeos de unicidad y el insert de AddNewUser
// comparten scope para que no se cuele un duplicado entre ambos.
type UserTxRunner interface {
	RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error
}
