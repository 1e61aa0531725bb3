package repository

import "github.com/jhoicas/Reembolsos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Cero filas no es error: GetByID/GetByCreds devuelven nil y las listas
// vienen vacías; la capa de servicio decide si eso es excepcional.
type UserRepository interface {
	GetAll() ([]entity.User, error)
	GetByID(id int) (*entity.User, error)
	Save(newUser *entity.NewUser) (*entity.User, error)
	UpdateByID(user *entity.User) error
	DeleteByID(id int) (bool, error)
	// GetByCreds busca por el par username/password tal cual (credencial opaca).
	GetByCreds(username, password string) (*entity.User, error)
	// CountByUniqueKey cuenta filas existentes para un campo único
	// (username o email); un conteo != 0 significa conflicto.
	CountByUniqueKey(field, value string) (int, error)
}
