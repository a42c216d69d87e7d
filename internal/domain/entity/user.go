package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin" // acceso total: edita, borra y lee el libro
	RoleStaff = "staff" // crea y consulta artículos
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, staff
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
