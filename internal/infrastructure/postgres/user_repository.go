package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Reembolsos-api/internal/domain"
	"github.com/jhoicas/Reembolsos-api/internal/domain/entity"
	"github.com/jhoicas/Reembolsos-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// Columnas permitidas para CountByUniqueKey; cualquier otro campo es un
// error de programación, no de datos.
var userUniqueColumns = map[string]string{
	"username": "username",
	"email":    "email",
}

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// Cada llamada ejecuta exactamente una sentencia parametrizada sobre una
// conexión del pool; pgx la devuelve al pool en toda salida, con o sin error.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// db puede ser el pool o una transacción (ver TxRunner).
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

const userSelect = `
	SELECT u.ers_user_id, u.username, u.password, u.first_name, u.last_name, u.email, r.role_name
	FROM ers_users u
	JOIN ers_user_roles r ON u.user_role_id = r.role_id`

// GetAll obtiene todos los usuarios; sin filas devuelve slice vacío, no error.
func (r *UserRepo) GetAll() ([]entity.User, error) {
	rows, err := r.db.Query(context.Background(), userSelect+` ORDER BY u.ers_user_id`)
	if err != nil {
		return nil, domain.NewInternalServer("error during GetAll in UserRepo: " + err.Error())
	}
	defer rows.Close()

	users := []entity.User{}
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.Role); err != nil {
			return nil, domain.NewInternalServer("error during GetAll scan in UserRepo: " + err.Error())
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalServer("error during GetAll in UserRepo: " + err.Error())
	}
	return users, nil
}

// GetByID obtiene un usuario por id; nil si no existe.
func (r *UserRepo) GetByID(id int) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(context.Background(), userSelect+` WHERE u.ers_user_id = $1`, id).Scan(
		&u.ID, &u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewInternalServer("error during GetByID in UserRepo: " + err.Error())
	}
	return &u, nil
}

// Save inserta un usuario nuevo y lee la fila generada en la misma
// sentencia (INSERT ... RETURNING); una violación de unicidad que el
// pre-chequeo del servicio no alcanzó a ver emerge como DataPersistance.
func (r *UserRepo) Save(newUser *entity.NewUser) (*entity.User, error) {
	query := `
		INSERT INTO ers_users (username, password, first_name, last_name, email, user_role_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ers_user_id,
			(SELECT r.role_name FROM ers_user_roles r WHERE r.role_id = ers_users.user_role_id)`

	u := entity.User{
		Username:  newUser.Username,
		Password:  newUser.Password,
		FirstName: newUser.FirstName,
		LastName:  newUser.LastName,
		Email:     newUser.Email,
	}
	err := r.db.QueryRow(context.Background(), query,
		newUser.Username, newUser.Password, newUser.FirstName, newUser.LastName, newUser.Email, newUser.RoleID,
	).Scan(&u.ID, &u.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewDataPersistance("a user with this username or email already exists")
		}
		if isForeignKeyViolation(err) {
			return nil, domain.NewDataPersistance("the provided role id does not exist")
		}
		return nil, domain.NewInternalServer("error during Save in UserRepo: " + err.Error())
	}
	return &u, nil
}

// UpdateByID reescribe en sitio los campos mutables del usuario con ese id.
func (r *UserRepo) UpdateByID(user *entity.User) error {
	query := `
		UPDATE ers_users
		SET username = $2, password = $3, first_name = $4, last_name = $5, email = $6,
			user_role_id = (SELECT role_id FROM ers_user_roles WHERE role_name = $7)
		WHERE ers_user_id = $1`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDataPersistance("a user with this username or email already exists")
		}
		return domain.NewInternalServer("error during UpdateByID in UserRepo: " + err.Error())
	}
	return nil
}

// DeleteByID elimina la fila; informa si el borrado ocurrió.
func (r *UserRepo) DeleteByID(id int) (bool, error) {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM ers_users WHERE ers_user_id = $1`, id)
	if err != nil {
		return false, domain.NewInternalServer("error during DeleteByID in UserRepo: " + err.Error())
	}
	return tag.RowsAffected() > 0, nil
}

// GetByCreds busca por el par username/password; nil si no hay coincidencia.
// La comparación es literal: la credencial se guarda tal cual (ver DESIGN).
func (r *UserRepo) GetByCreds(username, password string) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(context.Background(),
		userSelect+` WHERE u.username = $1 AND u.password = $2`, username, password,
	).Scan(&u.ID, &u.Username, &u.Password, &u.FirstName, &u.LastName, &u.Email, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewInternalServer("error during GetByCreds in UserRepo: " + err.Error())
	}
	return &u, nil
}

// CountByUniqueKey cuenta filas que ya usan el valor de un campo único.
// El llamador interpreta conteo != 0 como conflicto.
func (r *UserRepo) CountByUniqueKey(field, value string) (int, error) {
	column, ok := userUniqueColumns[field]
	if !ok {
		return 0, domain.NewInternalServer(fmt.Sprintf("CountByUniqueKey: field %q is not a unique user column", field))
	}
	var count int
	query := fmt.Sprintf(`SELECT count(*) FROM ers_users WHERE %s = $1`, column)
	if err := r.db.QueryRow(context.Background(), query, value).Scan(&count); err != nil {
		return 0, domain.NewInternalServer("error during CountByUniqueKey in UserRepo: " + err.Error())
	}
	return count, nil
}
