package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Reembolsos-api/internal/application/service"
	"github.com/jhoicas/Reembolsos-api/internal/domain"
	"github.com/jhoicas/Reembolsos-api/internal/domain/repository"
)

var _ service.UserTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Los pre-chequeos de unicidad y el insert de un usuario corren en el
// mismo scope transaccional para cerrar la carrera check-then-insert.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunUsers inicia una transacción, ejecuta fn con un UserRepository atado
// a la tx y hace Commit o Rollback. El Rollback diferido cubre todo camino
// de error sin fugar la conexión.
func (r *TxRunner) RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewInternalServer("error starting transaction in TxRunner: " + err.Error())
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.NewInternalServer("error committing transaction in TxRunner: " + err.Error())
	}
	return nil
}
