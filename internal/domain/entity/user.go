package entity

// Roles válidos para User (nombre resuelto desde ers_user_roles).
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Ids de referencia de rol en ers_user_roles.
const (
	RoleIDAdmin    = 1
	RoleIDManager  = 2
	RoleIDEmployee = 3
)

// User representa un usuario del sistema de reembolsos.
// Password es una credencial opaca: se compara tal cual en el repositorio.
type User struct {
	ID        int
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Role      string // employee, manager, admin
}

// NewUser registro reducido de creación: sin id asignado y con la
// referencia de rol todavía sin resolver a nombre.
type NewUser struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	RoleID    int
}
