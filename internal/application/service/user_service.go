package service

import (
	"context"

	"github.com/jhoicas/Reembolsos-api/internal/application/dto"
	"github.com/jhoicas/Reembolsos-api/internal/domain"
	"github.com/jhoicas/Reembolsos-api/internal/domain/entity"
	"github.com/jhoicas/Reembolsos-api/internal/domain/repository"
	"github.com/jhoicas/Reembolsos-api/internal/domain/validation"
)

// UserService aplica las reglas de negocio de usuarios: validación de
// entrada, unicidad de email/username y orquestación del repositorio.
// Sin estado propio; los errores del repositorio suben sin tocar.
type UserService struct {
	repo repository.UserRepository
	tx   UserTxRunner
}

// NewUserService construye el servicio con el puerto de persistencia y
// el runner transaccional para la creación.
func NewUserService(repo repository.UserRepository, tx UserTxRunner) *UserService {
	return &UserService{repo: repo, tx: tx}
}

// GetAllUsers obtiene todos los usuarios; una colección vacía es ResourceNotFound.
func (s *UserService) GetAllUsers() ([]dto.UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.NewResourceNotFound("No users found.")
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *userToResponse(&users[i]))
	}
	return out, nil
}

// GetUserByID obtiene un usuario por id; un resultado vacío es ResourceNotFound.
func (s *UserService) GetUserByID(id int) (*dto.UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if validation.IsEmptyObject(user) {
		return nil, domain.NewResourceNotFound("A user could not be found given the input id.")
	}
	return userToResponse(user), nil
}

// AddNewUser valida el registro y corre en una sola transacción los dos
// chequeos de unicidad (email primero, username después) y el insert.
// El primer conflicto corta antes de cualquier escritura.
func (s *UserService) AddNewUser(in dto.NewUserRequest) (*dto.UserResponse, error) {
	if !validation.IsValidObject(in) {
		return nil, domain.NewBadRequest("User object given was invalid.")
	}

	var created *entity.User
	err := s.tx.RunUsers(context.Background(), func(users repository.UserRepository) error {
		conflict, err := users.CountByUniqueKey("email", in.Email)
		if err != nil {
			return err
		}
		if conflict != 0 {
			return domain.NewDataPersistance("A user with this email already exists.")
		}

		conflict, err = users.CountByUniqueKey("username", in.Username)
		if err != nil {
			return err
		}
		if conflict != 0 {
			return domain.NewDataPersistance("A user with this username already exists.")
		}

		created, err = users.Save(&entity.NewUser{
			Username:  in.Username,
			Password:  in.Password,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			RoleID:    in.RoleID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return userToResponse(created), nil
}

// DeleteUserByID elimina un usuario por id e informa si el borrado ocurrió.
func (s *UserService) DeleteUserByID(id int) (bool, error) {
	if id < 1 {
		return false, domain.NewBadRequest("Given input is not a valid number.")
	}
	return s.repo.DeleteByID(id)
}

// AuthUser busca el principal por par de credenciales. Un resultado vacío
// NO se escala a error aquí: el llamador decide si la ausencia de
// principal es una falla de autenticación.
func (s *UserService) AuthUser(username, password string) (*dto.UserResponse, error) {
	if !validation.IsValidString(username, password) {
		return nil, domain.NewBadRequest("Given username and/or password are not valid strings.")
	}
	user, err := s.repo.GetByCreds(username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return userToResponse(user), nil
}

// UpdateUser valida el registro completo y lo persiste en sitio.
func (s *UserService) UpdateUser(in dto.UpdateUserRequest) (bool, error) {
	if !validation.IsValidObject(in) {
		return false, domain.NewBadRequest("User object given was invalid.")
	}
	err := s.repo.UpdateByID(&entity.User{
		ID:        in.ID,
		Username:  in.Username,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Role:      in.Role,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
	}
}
