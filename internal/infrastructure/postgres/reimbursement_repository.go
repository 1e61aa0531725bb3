package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Reembolsos-api/internal/domain"
	"github.com/jhoicas/Reembolsos-api/internal/domain/entity"
	"github.com/jhoicas/Reembolsos-api/internal/domain/repository"
)

var _ repository.ReimbursementRepository = (*ReimbRepo)(nil)

// ReimbRepo implementación del puerto ReimbursementRepository sobre PostgreSQL.
type ReimbRepo struct {
	db Querier
}

// NewReimbRepository construye el adaptador de persistencia para reembolsos.
func NewReimbRepository(db Querier) *ReimbRepo {
	return &ReimbRepo{db: db}
}

const reimbSelect = `
	SELECT reimb_id, amount, submitted, resolved, description, author_id, resolver_id, reimb_status_id, reimb_type_id
	FROM ers_reimbursements`

func scanReimb(row pgx.Row, rb *entity.Reimbursement) error {
	return row.Scan(
		&rb.ID, &rb.Amount, &rb.Submitted, &rb.Resolved, &rb.Description,
		&rb.AuthorID, &rb.ResolverID, &rb.StatusID, &rb.TypeID,
	)
}

// GetAll obtiene todos los reembolsos; sin filas devuelve slice vacío.
func (r *ReimbRepo) GetAll() ([]entity.Reimbursement, error) {
	return r.list(reimbSelect + ` ORDER BY submitted DESC`)
}

// GetByAuthor obtiene los reembolsos presentados por un usuario.
func (r *ReimbRepo) GetByAuthor(authorID int) ([]entity.Reimbursement, error) {
	return r.list(reimbSelect+` WHERE author_id = $1 ORDER BY submitted DESC`, authorID)
}

func (r *ReimbRepo) list(query string, args ...any) ([]entity.Reimbursement, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, domain.NewInternalServer("error during list query in ReimbRepo: " + err.Error())
	}
	defer rows.Close()

	reimbs := []entity.Reimbursement{}
	for rows.Next() {
		var rb entity.Reimbursement
		if err := scanReimb(rows, &rb); err != nil {
			return nil, domain.NewInternalServer("error during list scan in ReimbRepo: " + err.Error())
		}
		reimbs = append(reimbs, rb)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalServer("error during list rows in ReimbRepo: " + err.Error())
	}
	return reimbs, nil
}

// GetByID obtiene un reembolso por id; nil si no existe.
func (r *ReimbRepo) GetByID(id int) (*entity.Reimbursement, error) {
	var rb entity.Reimbursement
	err := scanReimb(r.db.QueryRow(context.Background(), reimbSelect+` WHERE reimb_id = $1`, id), &rb)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewInternalServer("error during GetByID in ReimbRepo: " + err.Error())
	}
	return &rb, nil
}

// Save inserta un reembolso nuevo y lee la fila generada en la misma
// sentencia. resolved y resolver_id nacen NULL; el estado inicial es el
// que trae el registro (pending en el flujo normal).
func (r *ReimbRepo) Save(newReimb *entity.NewReimbursement) (*entity.Reimbursement, error) {
	query := `
		INSERT INTO ers_reimbursements (amount, submitted, description, author_id, reimb_status_id, reimb_type_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING reimb_id, amount, submitted, resolved, description, author_id, resolver_id, reimb_status_id, reimb_type_id`

	var rb entity.Reimbursement
	err := scanReimb(r.db.QueryRow(context.Background(), query,
		newReimb.Amount, newReimb.Submitted, newReimb.Description,
		newReimb.AuthorID, newReimb.StatusID, newReimb.TypeID,
	), &rb)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewDataPersistance("a referenced id (author, status or type) does not exist")
		}
		return nil, domain.NewInternalServer("error during Save in ReimbRepo: " + err.Error())
	}
	return &rb, nil
}

// UpdateByID reescribe los campos mutables del reembolso con ese id,
// incluida la terna de resolución (resolved, resolver_id, estado).
func (r *ReimbRepo) UpdateByID(reimb *entity.Reimbursement) error {
	query := `
		UPDATE ers_reimbursements
		SET amount = $2, resolved = $3, description = $4, resolver_id = $5, reimb_status_id = $6, reimb_type_id = $7
		WHERE reimb_id = $1`
	_, err := r.db.Exec(context.Background(), query,
		reimb.ID, reimb.Amount, reimb.Resolved, reimb.Description,
		reimb.ResolverID, reimb.StatusID, reimb.TypeID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewDataPersistance("a referenced id (resolver, status or type) does not exist")
		}
		return domain.NewInternalServer("error during UpdateByID in ReimbRepo: " + err.Error())
	}
	return nil
}

// DeleteByID elimina la fila; informa si el borrado ocurrió.
func (r *ReimbRepo) DeleteByID(id int) (bool, error) {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM ers_reimbursements WHERE reimb_id = $1`, id)
	if err != nil {
		return false, domain.NewInternalServer("error during DeleteByID in ReimbRepo: " + err.Error())
	}
	return tag.RowsAffected() > 0, nil
}
