package dto

// NewUserRequest entrada para crear un usuario. role_id referencia
// ers_user_roles (1=admin, 2=manager, 3=employee).
type NewUserRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	RoleID    int    `json:"role_id" validate:"required,min=1,max=3"`
}

// UpdateUserRequest entrada para actualizar un usuario en sitio.
type UpdateUserRequest struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role" validate:"oneof=employee manager admin"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// LoginRequest entrada para autenticación por credenciales.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token del principal.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
