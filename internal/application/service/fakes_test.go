package service_test

import (
	"context"

	"github.com/jhoicas/Reembolsos-api/internal/domain/entity"
	"github.com/jhoicas/Reembolsos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de persistencia, con contadores de llamadas para
// verificar que las validaciones cortan antes de tocar el repositorio.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	getAllCalls  int
	getByIDCalls int
	saveCalls    int
	updateCalls  int
	deleteCalls  int
	credsCalls   int
	countCalls   []string // campos consultados, en orden

	onGetAll  func() ([]entity.User, error)
	onGetByID func(id int) (*entity.User, error)
	onSave    func(nu *entity.NewUser) (*entity.User, error)
	onUpdate  func(u *entity.User) error
	onDelete  func(id int) (bool, error)
	onCreds   func(username, password string) (*entity.User, error)
	onCount   func(field, value string) (int, error)
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) GetAll() ([]entity.User, error) {
	f.getAllCalls++
	if f.onGetAll != nil {
		return f.onGetAll()
	}
	return []entity.User{}, nil
}

func (f *fakeUserRepo) GetByID(id int) (*entity.User, error) {
	f.getByIDCalls++
	if f.onGetByID != nil {
		return f.onGetByID(id)
	}
	return nil, nil
}

func (f *fakeUserRepo) Save(nu *entity.NewUser) (*entity.User, error) {
	f.saveCalls++
	if f.onSave != nil {
		return f.onSave(nu)
	}
	return &entity.User{ID: 1}, nil
}

func (f *fakeUserRepo) UpdateByID(u *entity.User) error {
	f.updateCalls++
	if f.onUpdate != nil {
		return f.onUpdate(u)
	}
	return nil
}

func (f *fakeUserRepo) DeleteByID(id int) (bool, error) {
	f.deleteCalls++
	if f.onDelete != nil {
		return f.onDelete(id)
	}
	return true, nil
}

func (f *fakeUserRepo) GetByCreds(username, password string) (*entity.User, error) {
	f.credsCalls++
	if f.onCreds != nil {
		return f.onCreds(username, password)
	}
	return nil, nil
}

func (f *fakeUserRepo) CountByUniqueKey(field, value string) (int, error) {
	f.countCalls = append(f.countCalls, field)
	if f.onCount != nil {
		return f.onCount(field, value)
	}
	return 0, nil
}

// fakeTxRunner ejecuta el callback directo contra el fake, sin transacción.
type fakeTxRunner struct {
	repo     *fakeUserRepo
	runCalls int
}

func (f *fakeTxRunner) RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error {
	f.runCalls++
	return fn(f.repo)
}

type fakeReimbRepo struct {
	getAllCalls   int
	getByIDCalls  int
	byAuthorCalls int
	saveCalls     int
	updateCalls   int
	deleteCalls   int

	onGetAll   func() ([]entity.Reimbursement, error)
	onGetByID  func(id int) (*entity.Reimbursement, error)
	onByAuthor func(authorID int) ([]entity.Reimbursement, error)
	onSave     func(nr *entity.NewReimbursement) (*entity.Reimbursement, error)
	onUpdate   func(rb *entity.Reimbursement) error
	onDelete   func(id int) (bool, error)
}

var _ repository.ReimbursementRepository = (*fakeReimbRepo)(nil)

func (f *fakeReimbRepo) GetAll() ([]entity.Reimbursement, error) {
	f.getAllCalls++
	if f.onGetAll != nil {
		return f.onGetAll()
	}
	return []entity.Reimbursement{}, nil
}

func (f *fakeReimbRepo) GetByID(id int) (*entity.Reimbursement, error) {
	f.getByIDCalls++
	if f.onGetByID != nil {
		return f.onGetByID(id)
	}
	return nil, nil
}

func (f *fakeReimbRepo) GetByAuthor(authorID int) ([]entity.Reimbursement, error) {
	f.byAuthorCalls++
	if f.onByAuthor != nil {
		return f.onByAuthor(authorID)
	}
	return []entity.Reimbursement{}, nil
}

func (f *fakeReimbRepo) Save(nr *entity.NewReimbursement) (*entity.Reimbursement, error) {
	f.saveCalls++
	if f.onSave != nil {
		return f.onSave(nr)
	}
	return &entity.Reimbursement{ID: 1}, nil
}

func (f *fakeReimbRepo) UpdateByID(rb *entity.Reimbursement) error {
	f.updateCalls++
	if f.onUpdate != nil {
		return f.onUpdate(rb)
	}
	return nil
}

func (f *fakeReimbRepo) DeleteByID(id int) (bool, error) {
	f.deleteCalls++
	if f.onDelete != nil {
		return f.onDelete(id)
	}
	return true, nil
}
