package repository

import "github.com/jhoicas/Reembolsos-api/internal/domain/entity"

// ReimbursementRepository define el puerto de persistencia para Reimbursement.
type ReimbursementRepository interface {
	GetAll() ([]entity.Reimbursement, error)
	GetByID(id int) (*entity.Reimbursement, error)
	GetByAuthor(authorID int) ([]entity.Reimbursement, error)
	Save(newReimb *entity.NewReimbursement) (*entity.Reimbursement, error)
	UpdateByID(reimb *entity.Reimbursement) error
	DeleteByID(id int) (bool, error)
}
