package entity

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del sistema. El username es la clave primaria.
type User struct {
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, staff
}

// IsAdmin indica si el usuario tiene el rol admin.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// ValidRole verifica que el rol sea uno de los enumerados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
